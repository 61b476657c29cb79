package league

// CanModifyTeam gates all team create/replace/delete operations: picks are
// frozen the moment a league leaves the open state.
func CanModifyTeam(status Status) bool {
	return status == StatusOpen
}

// CanJoin allows new entries only while the league is open and below its
// participant cap.
func CanJoin(status Status, currentEntryCount, maxParticipants int) bool {
	return status == StatusOpen && currentEntryCount < maxParticipants
}

// CanTransition permits strictly forward status moves. Skipping intermediate
// states is allowed; going backward never is.
func CanTransition(from, to Status) bool {
	fromIdx, ok := statusOrder[from]
	if !ok {
		return false
	}
	toIdx, ok := statusOrder[to]
	if !ok {
		return false
	}
	return toIdx > fromIdx
}
