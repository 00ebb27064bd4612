package widget

// Field is the backing input the widget keeps in sync. The serialized value
// written through SetValue is the only durable state.
type Field interface {
	Value() string
	SetValue(value string)
}

// StringField is an in-memory Field.
type StringField struct {
	value string
}

// NewStringField returns a field holding value.
func NewStringField(value string) *StringField {
	return &StringField{value: value}
}

func (f *StringField) Value() string {
	if f == nil {
		return ""
	}
	return f.value
}

func (f *StringField) SetValue(value string) {
	if f == nil {
		return
	}
	f.value = value
}
