package faq

// General booking templates take the center display name and its booking link.
var generalBookingTemplates = []string{
	"You can book a session at our %s center right here: %s",
	"Happy to help! Grab a spot at %s using this link: %s",
	"Here's the booking page for our %s center: %s — see you soon!",
}

// Service booking templates take the service name, center display name and
// the service booking link.
var serviceBookingTemplates = []string{
	"Great choice! You can book %s at our %s center here: %s",
	"Here's the direct booking link for %s at %s: %s",
	"Booking %s at %s is easy — just use this link: %s",
}

var cryoExplainers = []string{
	"Cryotherapy exposes your body to very cold air for a few minutes, which can help reduce inflammation, speed up muscle recovery and boost your energy. Most sessions last under five minutes.",
	"In a cryotherapy session you step into a chamber cooled well below freezing for two to four minutes. The cold triggers your body's natural recovery response — many guests use it for sore muscles, better sleep and an overall boost.",
	"Think of cryotherapy as an ice bath without the water: a short burst of extreme cold that helps with recovery, inflammation and general wellness. A typical whole-body session takes less than five minutes.",
}

const concernsReassurance = "That's completely understandable! Cryotherapy is safe, sessions are short, and a trained team member stays with you the entire time. First-timers get a full walkthrough before anything starts, and you can stop at any point. Most guests say the session flies by."

const fallbackMessage = "Sorry, I didn't quite catch that. I can help you book an appointment, explain how cryotherapy works, reschedule an existing appointment, or share information about our centers."

const rateLimitedMessage = "You're sending messages a little too quickly. Please wait a few minutes and try again."

// RateLimitedMessage is the fixed rejection text for throttled webhook calls.
func RateLimitedMessage() string {
	return rateLimitedMessage
}
