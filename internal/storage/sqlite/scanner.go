package sqlite

// scanner is the common scanning behavior of sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanSlotValue scans the value column of a slots row.
func scanSlotValue(s scanner) ([]byte, error) {
	var value string
	if err := s.Scan(&value); err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// scanSlotUpdatedAt scans the updated_at column of a slots row.
func scanSlotUpdatedAt(s scanner) ([]byte, error) {
	var stamp string
	if err := s.Scan(&stamp); err != nil {
		return nil, err
	}
	return []byte(stamp), nil
}
