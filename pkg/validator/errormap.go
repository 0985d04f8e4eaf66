package validator

// AllFields is the field key for errors not attributable to a single field.
const AllFields = "__all__"

// FieldErrors maps a field name to its ordered error list.
// Lists are only ever appended to.
type FieldErrors map[string][]ValidationError

// Add appends errs to the list for field, creating it when absent.
// An empty field name is stored under AllFields.
func (fe FieldErrors) Add(field string, errs ...ValidationError) {
	if field == "" {
		field = AllFields
	}
	fe[field] = append(fe[field], errs...)
}

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// Messages returns the plain messages recorded for field, in order.
func (fe FieldErrors) Messages(field string) []string {
	list := fe[field]
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, err := range list {
		out[i] = err.Message
	}
	return out
}

// Count returns the total number of errors across all fields.
func (fe FieldErrors) Count() int {
	n := 0
	for _, list := range fe {
		n += len(list)
	}
	return n
}

// RowErrors maps a row index to the field errors recorded for that row.
type RowErrors map[int]FieldErrors

// Ensure returns the field errors of row, creating an empty entry when absent.
func (re RowErrors) Ensure(row int) FieldErrors {
	fe, ok := re[row]
	if !ok {
		fe = make(FieldErrors)
		re[row] = fe
	}
	return fe
}

// Add appends errs to the list of (row, field), creating nested entries as needed.
func (re RowErrors) Add(row int, field string, errs ...ValidationError) {
	re.Ensure(row).Add(field, errs...)
}

// Count returns the total number of errors across all rows.
func (re RowErrors) Count() int {
	n := 0
	for _, fe := range re {
		n += fe.Count()
	}
	return n
}
