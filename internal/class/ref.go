package class

import (
	"regexp"

	"github.com/google/uuid"
)

// A Ref identifies either a class template or one concrete instance of it.
// Instances of recurring templates never exist as rows; they are materialized
// at query time, so their identity is the pair (template id, civil date).
type Kind int

const (
	KindTemplate Kind = iota
	KindInstance
)

type Ref struct {
	Kind       Kind
	TemplateID string
	Date       string // YYYY-MM-DD, empty for template refs
}

var instanceSuffix = regexp.MustCompile(`^(.+)-(\d{4}-\d{2}-\d{2})$`)

func TemplateRef(templateID string) Ref {
	return Ref{Kind: KindTemplate, TemplateID: templateID}
}

func InstanceRef(templateID, date string) Ref {
	return Ref{Kind: KindInstance, TemplateID: templateID, Date: date}
}

// ParseRef decodes a ref from its string form. A trailing civil-date suffix
// marks an instance, but only when what remains is a valid template UUID;
// otherwise the whole string is treated as a template id.
func ParseRef(s string) Ref {
	m := instanceSuffix.FindStringSubmatch(s)
	if m == nil {
		return TemplateRef(s)
	}
	if uuid.Validate(m[1]) != nil {
		return TemplateRef(s)
	}
	return InstanceRef(m[1], m[2])
}

func (r Ref) String() string {
	if r.Kind == KindInstance {
		return r.TemplateID + "-" + r.Date
	}
	return r.TemplateID
}

func (r Ref) IsInstance() bool {
	return r.Kind == KindInstance
}
