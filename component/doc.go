// Package component defines the lifecycle contract for infrastructure
// components (Name/Start/Stop/Health) and an ordered registry that starts
// them in registration order and stops them in reverse. Construction-time
// wiring lives in the registry package; this package only manages runtime
// lifecycle.
package component
