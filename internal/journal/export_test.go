package journal

// InsertActionAt exposes backdated inserts to external tests so streak
// scenarios can span multiple calendar days.
func (s *Store) InsertActionAt(ts, action string, success bool) error {
	return s.insertActionAt(ts, action, success)
}
