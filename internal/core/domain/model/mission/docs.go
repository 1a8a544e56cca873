// Package mission contains the MissionOrder aggregate and its lifecycle
// state machine, the core of the crew staffing workflow.
//
// A mission order coordinates one temporary staffing assignment from
// creation through financial review, client approval, crew assignment,
// execution and post-mission validation. The Status value object is the
// single source of truth for which operations are legal; every transition
// method on the aggregate validates the actor's role first, the status
// precondition second, and mutates only when both pass, so a failed
// transition never leaves a partial change behind.
//
// Transitions do not talk to the outside world. Instead each successful
// transition records the notification events it owes; the application layer
// drains them with PullEvents after the new snapshot is committed and hands
// them to the notification dispatcher.
//
// Two independent paths lead to validation and both are intentional: the
// explicit execution path (assign, start, complete) and the date-based
// completion sweep that advances approved missions whose contracted end
// date has passed. The sweep's status precondition guarantees it never
// touches a mission that already entered the execution path.
package mission
