// Package models defines the core domain entities for the camp
// operations tool.
//
// # Entities
//
//   - User: a login account (admin or staff)
//   - Person: a directory entry (student or staff)
//   - Room: a bunk roster with an inspection status
//   - CampEvent: one slot on the trip schedule
//   - Task: a tracked chore or incident with a lifecycle
//   - AttendanceSession / AttendanceRecord: roll-call checkpoints and
//     per-student marks
//   - Place: a vendor contact with payment tracking
//   - ResponsibilityGroup: a staff member's assigned students
//
// # Design principles
//
//  1. Every entity is identified by an opaque string ID unique within
//     its own store; AttendanceRecord is the exception and is keyed by
//     (SessionID, StudentID).
//  2. Relationships are ID or email strings, never pointers, so records
//     serialize cleanly as flat JSON arrays.
//  3. Records are replaced whole on save; there are no partial updates,
//     so callers merge fields before persisting.
//
// A staff Person and a User are linked through a shared email address;
// the service layer keeps the two sides consistent.
package models
