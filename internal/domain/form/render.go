package form

// Widget is the kind of control an input is presented as.
type Widget string

const (
	WidgetTextInput  Widget = "input"
	WidgetTextarea   Widget = "textarea"
	WidgetSelect     Widget = "select"
	WidgetCheckboxes Widget = "checkboxes"
	WidgetFile       Widget = "file"
	WidgetGrid       Widget = "grid"
)

// Accepted upload types per attachment field type.
var (
	PhotoExtensions = []string{"png", "jpg", "jpeg", "webp"}
	VideoExtensions = []string{"mp4", "mov", "webm"}
)

// Input describes one rendered control. It is a pure projection of a Field.
type Input struct {
	Name     string
	Label    string
	Section  string
	Widget   Widget
	Options  []string
	Accept   []string
	Multiple bool
	Rows     []string
	Columns  []string

	// Required is the static requirement. Conditional requirements are
	// reported through RequiredWhen and resolved by a Validator.
	Required     bool
	RequiredWhen *Requirement
}

// Render projects the schema into one input per field, in schema order.
func Render(s Schema) []Input {
	inputs := make([]Input, 0, len(s.Fields()))
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			inputs = append(inputs, renderField(sec.Title, f))
		}
	}
	return inputs
}

func renderField(section string, f Field) Input {
	in := Input{
		Name:         f.ID,
		Label:        f.Label,
		Section:      section,
		Required:     f.Required,
		RequiredWhen: f.Requirement,
	}

	switch f.Type {
	case TypeText:
		in.Widget = WidgetTextInput
	case TypeTextarea:
		in.Widget = WidgetTextarea
	case TypeSelect:
		in.Widget = WidgetSelect
		in.Options = clone(f.Options)
	case TypeChecklist:
		in.Widget = WidgetCheckboxes
		in.Options = clone(f.Options)
		in.Multiple = true
	case TypePhoto:
		in.Widget = WidgetFile
		in.Accept = clone(PhotoExtensions)
		in.Multiple = true
	case TypeVideo:
		in.Widget = WidgetFile
		in.Accept = clone(VideoExtensions)
		in.Multiple = true
	case TypeTable:
		in.Widget = WidgetGrid
		in.Rows = clone(f.Rows)
		in.Columns = clone(f.Columns)
	default:
		in.Widget = WidgetTextInput
	}

	return in
}
