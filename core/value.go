// raw field values coming from any transport, as an explicit tagged union.
// Place for pure domain logic: nothing here knows about Gin, GORM or Redis.

package core

// Kind tells which variant a Value holds.
type Kind int

const (
	KindAbsent      Kind = iota // field not sent at all
	KindText                    // plain text input
	KindNumber                  // numeric input (JSON numbers)
	KindBoolean                 // checkbox-style input
	KindBlob                    // uploaded file held in memory
	KindDataURI                 // base64 data URI text
	KindUnsupported             // any shape the transport could not map (objects, arrays...)
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindBlob:
		return "blob"
	case KindDataURI:
		return "data-uri"
	default:
		return "unsupported"
	}
}

// Blob is an uploaded file. Data may be nil when only metadata is known
// (e.g. the upload was too large to read).
type Blob struct {
	Name     string `json:"name,omitempty"`
	MIMEType string `json:"type"`
	Size     int64  `json:"size"`
	Data     []byte `json:"-"`
}

// Value is one raw field value. The zero Value is Absent.
type Value struct {
	kind Kind
	text string
	num  float64
	flag bool
	blob *Blob
}

func Absent() Value { return Value{} }
func Text(s string) Value { return Value{kind: KindText, text: s} }
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }
func Boolean(b bool) Value { return Value{kind: KindBoolean, flag: b} }
func DataURIText(s string) Value { return Value{kind: KindDataURI, text: s} }
func Unsupported() Value { return Value{kind: KindUnsupported} }

// BlobValue keeps its own copy of the blob header; Data is shared, not cloned.
func BlobValue(b Blob) Value {
	cp := b
	return Value{kind: KindBlob, blob: &cp}
}

func (v Value) Kind() Kind { return v.kind }

// AsText returns the text for Text and DataURI values.
func (v Value) AsText() (string, bool) {
	if v.kind == KindText || v.kind == KindDataURI {
		return v.text, true
	}
	return "", false
}

func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

func (v Value) AsBool() (bool, bool) { return v.flag, v.kind == KindBoolean }

func (v Value) AsBlob() (Blob, bool) {
	if v.kind != KindBlob || v.blob == nil {
		return Blob{}, false
	}
	return *v.blob, true
}

// RawInput is the field bag handed over by a transport: field name -> value.
type RawInput map[string]Value

// Get returns Absent for unknown keys and for a nil bag.
func (r RawInput) Get(field string) Value {
	if r == nil {
		return Absent()
	}
	return r[field]
}
