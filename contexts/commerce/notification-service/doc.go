// Package notificationservice owns low-stock handling: employees file
// reports against their own unit's items, admins review a live view of
// everything currently below the threshold.
package notificationservice
