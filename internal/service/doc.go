// Package service contains FlipIQ's use cases. It coordinates the generator,
// the task runner and the store so that network work happens off the
// dispatcher while every store append happens on it.
//
// StudyGuideService creates study guides, synchronously or as a tracked
// background task. CommunityService posts messages from the current user
// into the local community thread.
//
// Services receive their collaborators through constructor injection and
// translate store errors into the sentinels declared in errors.go.
package service
