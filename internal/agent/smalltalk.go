package agent

import "strings"

var greetings = []string{"hello", "hi", "hey", "good morning", "good evening", "greetings"}

// smallTalk answers a handful of conversational phrases. It returns ""
// when the input is not small talk.
func smallTalk(lower string) string {
	for _, greet := range greetings {
		if strings.Contains(lower, greet) {
			return "Hello! I'm your Reminder Agent. How can I help you organize your day?"
		}
	}

	if strings.Contains(lower, "how are you") {
		return "I'm functioning perfectly and ready to help you set reminders!"
	}
	if strings.Contains(lower, "who are you") || strings.Contains(lower, "what are you") {
		return "I am a CLI Reminder Agent designed to help you track tasks and appointments."
	}
	if strings.Contains(lower, "thank") {
		return "You're welcome!"
	}
	if strings.Contains(lower, "bye") || strings.Contains(lower, "see ya") {
		return "Goodbye! Have a great day."
	}

	return ""
}
