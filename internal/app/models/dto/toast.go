package dto

// ToastVariant selects how a notification is styled
type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// Toast is a transient user-visible notification
type Toast struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Variant     ToastVariant `json:"variant"`
}

// SuccessToast creates a default-styled toast
func SuccessToast(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: ToastDefault}
}

// ErrorToast creates a destructive toast
func ErrorToast(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: ToastDestructive}
}

// IsError reports whether the toast is destructive
func (t Toast) IsError() bool {
	return t.Variant == ToastDestructive
}
