// Package chatbot answers free-text questions from a fixed, ordered table
// of keyword rules.
package chatbot

import "strings"

type Intent string

const (
	IntentVolunteer   Intent = "volunteer"
	IntentHours       Intent = "hours"
	IntentEmergency   Intent = "emergency"
	IntentAppointment Intent = "appointment"
	IntentHello       Intent = "hello"
	IntentHi          Intent = "hi"
	IntentThanks      Intent = "thanks"
	IntentDefault     Intent = "default"
)

// Rule maps a set of keywords to a canned response. A rule matches when any
// keyword is a substring of the lower-cased utterance.
type Rule struct {
	Intent   Intent   `json:"intent"`
	Keywords []string `json:"keywords"`
	Response string   `json:"response"`
}

// rules is evaluated top to bottom; the first match wins. "help" sits with
// emergency and "hi" after hello/hey, so order changes answers.
var rules = []Rule{
	{
		Intent:   IntentVolunteer,
		Keywords: []string{"volunteer", "join"},
		Response: `We'd love to have you join our team! Please fill out the contact form above and select "Volunteering" as your inquiry type. Our coordinator will contact you.`,
	},
	{
		Intent:   IntentHours,
		Keywords: []string{"hour", "open"},
		Response: "Our support center is open Monday through Friday, from 9:00 AM to 6:00 PM EST.",
	},
	{
		Intent:   IntentEmergency,
		Keywords: []string{"emergency", "help"},
		Response: "CRITICAL: If this is a medical emergency, please call 911 (or your local emergency services) immediately.",
	},
	{
		Intent:   IntentAppointment,
		Keywords: []string{"appointment", "schedule"},
		Response: "To schedule an appointment, please use the contact form or call our support line at +1 (555) 123-4567.",
	},
	{
		Intent:   IntentHello,
		Keywords: []string{"hello", "hey"},
		Response: "Hello! I'm your virtual health assistant. You can ask me about scheduling appointments, volunteering, or our hours.",
	},
	{
		Intent:   IntentHi,
		Keywords: []string{"hi"},
		Response: "Hi there! How can I help you with your healthcare needs today?",
	},
	{
		Intent:   IntentThanks,
		Keywords: []string{"thank"},
		Response: "You're very welcome! Is there anything else I can help you with?",
	},
}

var fallback = Rule{
	Intent:   IntentDefault,
	Response: "I'm still learning, but I can definitely help with appointments, volunteering, or our operation hours. What do you need help with?",
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Keywords = append([]string(nil), r.Keywords...)
		out[i] = r
	}
	return out
}

// Default returns the rule used when nothing else matches.
func Default() Rule {
	return fallback
}

// Match returns the first rule whose keywords occur in utterance, or the
// default rule.
func Match(utterance string) Rule {
	m := strings.ToLower(utterance)
	for _, r := range rules {
		if containsAny(m, r.Keywords) {
			return r
		}
	}
	return fallback
}

// Respond returns the canned reply for utterance.
func Respond(utterance string) string {
	return Match(utterance).Response
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
