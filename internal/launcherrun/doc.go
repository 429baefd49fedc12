// Package launcherrun orchestrates a launch attempt end to end:
// AcquireLock, LocateFiles, VerifyPrimary, VerifyHelper, Launch. Every
// failure state maps to one user notification and one process exit code.
package launcherrun
