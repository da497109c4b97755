package registration

// NoticeKind classifies a message shown to the user.
type NoticeKind string

const (
	NoticeValidation NoticeKind = "validation"
	NoticeRegistered NoticeKind = "registered"
)

// Notice is the structured payload handed to a Notifier. Messages are shown
// together, in order.
type Notice struct {
	Kind     NoticeKind
	Messages []string
}

// Notifier presents notices. Implementations must show the whole message
// list at once.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

type nopNotifier struct{}

func (nopNotifier) Notify(Notice) {}
