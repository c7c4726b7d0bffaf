package game

// NotificationTime is how long a notification stays on screen, in real
// seconds, before the next one (or nothing) replaces it.
const NotificationTime = 5.0

// Notifications is a FIFO of messages for the "notification" label. Only
// one message shows at a time; a newly queued message replaces the current
// one immediately rather than waiting out the display window.
type Notifications struct {
	queue      []string
	timePassed float64
	active     bool
}

// Push queues a message for display.
func (n *Notifications) Push(message string) {
	n.queue = append(n.queue, message)
}

// Len returns the number of queued messages not yet displayed.
func (n *Notifications) Len() int {
	return len(n.queue)
}

// Tick advances the display window by dt real seconds and returns the text
// the notification label should show. The boolean reports whether the label
// must be updated this tick; when false the current text stands.
func (n *Notifications) Tick(dt float64) (string, bool) {
	if !n.active {
		message := n.popFront()
		n.display(message)
		return message, true
	}

	elapsed := n.timePassed + dt
	switch {
	case elapsed > NotificationTime:
		// The current message has run its course.
		message := n.popFront()
		n.active = false
		n.display(message)
		return message, true
	case len(n.queue) > 0:
		// A queued message preempts the one on screen.
		message := n.popFront()
		n.display(message)
		return message, true
	default:
		n.timePassed = elapsed
		return "", false
	}
}

// display resets the window when a non-empty message goes on screen.
func (n *Notifications) display(message string) {
	if message != "" {
		n.active = true
		n.timePassed = 0
	}
}

func (n *Notifications) popFront() string {
	if len(n.queue) == 0 {
		return ""
	}
	front := n.queue[0]
	n.queue = n.queue[1:]
	return front
}
