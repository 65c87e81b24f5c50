package models

// RoomRef points at a room either by ID alone or with the full record
// attached. Engine components require resolved refs; the orchestrator
// resolves them before any pricing or status logic runs, so downstream code
// never branches on which shape arrived over the wire.
type RoomRef struct {
	ID       string `bson:"id" json:"id"`
	Resolved *Room  `bson:"resolved,omitempty" json:"resolved,omitempty"`
}

// IsResolved reports whether the full room record is attached.
func (r RoomRef) IsResolved() bool {
	return r.Resolved != nil
}

// ResolvedRoomRef builds a ref carrying the full record.
func ResolvedRoomRef(room Room) RoomRef {
	return RoomRef{ID: room.ID, Resolved: &room}
}

// GuestRef points at a guest by ID, optionally carrying a snapshot of the
// guest record as it looked when the reservation was taken.
type GuestRef struct {
	ID       string `bson:"id" json:"id"`
	Resolved *Guest `bson:"resolved,omitempty" json:"resolved,omitempty"`
}

// IsResolved reports whether the guest snapshot is attached.
func (g GuestRef) IsResolved() bool {
	return g.Resolved != nil
}
