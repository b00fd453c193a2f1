package model

type Class struct {
	ID         int64   `db:"c_id"`
	Name       string  `db:"class_name"`
	RoomNumber *string `db:"room_number"`
	Date       *string `db:"date"`
	StaffID    *int64  `db:"s_id"` // Assigned trainer; a class is available iff non-null
}

// Available reports whether a trainer has been assigned.
func (c *Class) Available() bool {
	return c.StaffID != nil
}

// ClassDetail is the admin view of a class, instructor resolved by name.
type ClassDetail struct {
	ID         int64   `db:"c_id"`
	Name       string  `db:"class_name"`
	RoomNumber *string `db:"room_number"`
	Date       *string `db:"date"`
	StaffID    *int64  `db:"s_id"`
	Instructor *string `db:"instructor"`
}

// RegisteredClass is a class a member signed up for, joined with the
// assigned trainer's name.
type RegisteredClass struct {
	ClassID    int64   `db:"c_id"`
	Name       string  `db:"class_name"`
	RoomNumber *string `db:"room_number"`
	Date       *string `db:"date"`
	Trainer    string  `db:"trainer"`
}
