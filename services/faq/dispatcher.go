package faq

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"cryoflow/models"

	"go.uber.org/zap"
)

// Intent display names as configured on the conversational platform.
const (
	IntentBookAppointment   = "Book Appointment"
	IntentExplainCryo       = "Explain Cryotherapy"
	IntentReschedule        = "Reschedule Appointment"
	IntentAddressConcerns   = "Address Concerns"
	IntentCenterInformation = "Provide Center Information"
)

// Dispatch maps one intent to reply text. Unrecognized intents fall through
// to the capability summary; they are never an error.
func (s *DefaultFAQService) Dispatch(ctx context.Context, intent string, params map[string]interface{}) (string, error) {
	centers, err := s.Facilities.Centers(ctx)
	if err != nil {
		s.Logger.Error("Failed to load facility data", zap.Error(err))
		return "", fmt.Errorf("faq: load facility data: %w", err)
	}

	center := lowerParam(params["center"])
	service := lowerParam(params["service"])

	// A supplied but unknown center short-circuits every intent.
	if center != "" {
		if _, ok := centers[center]; !ok {
			return unknownCenterMessage(centers), nil
		}
	}

	switch intent {
	case IntentBookAppointment:
		return s.bookAppointment(centers, center, service), nil
	case IntentExplainCryo:
		return s.pick(cryoExplainers), nil
	case IntentReschedule:
		if center == "" {
			return "Which center is your appointment at? We have locations in " + centerList(centers) + ".", nil
		}
		return fmt.Sprintf("No problem — you can reach our %s team directly to move your appointment: %s",
			title(center), centers[center].BusinessLink), nil
	case IntentAddressConcerns:
		return concernsReassurance, nil
	case IntentCenterInformation:
		if center == "" {
			return "We have centers in " + centerList(centers) + " — which one are you curious about?", nil
		}
		rec := centers[center]
		return fmt.Sprintf("Our %s center offers %s. Hours: %s. More details: %s",
			title(center), humanJoin(rec.ServiceNames()), rec.Hours, rec.BusinessLink), nil
	default:
		return fallbackMessage, nil
	}
}

// bookAppointment branches on which of center/service were supplied.
func (s *DefaultFAQService) bookAppointment(centers map[string]models.FacilityRecord, center, service string) string {
	switch {
	case center == "" && service == "":
		return "Which of our centers would you like to visit? We have locations in " + centerList(centers) + "."

	case center == "":
		// Service only: name the centers that offer it.
		var offering []string
		for _, name := range sortedKeys(centers) {
			if _, ok := centers[name].FindService(service); ok {
				offering = append(offering, title(name))
			}
		}
		if len(offering) == 0 {
			return fmt.Sprintf("I'm sorry, none of our centers currently offer %s. We have locations in %s if you'd like to see what they do offer.", service, centerList(centers))
		}
		return fmt.Sprintf("You can get %s at our %s center(s). Which one works for you?", service, humanJoin(offering))

	case service == "":
		rec := centers[center]
		return fmt.Sprintf(s.pick(generalBookingTemplates), title(center), rec.GeneralBookingLink)

	default:
		rec := centers[center]
		if svc, ok := rec.FindService(service); ok {
			return fmt.Sprintf(s.pick(serviceBookingTemplates), service, title(center), svc.BookingLink)
		}
		return fmt.Sprintf("Our %s center offers %s. You can book any of them here: %s",
			title(center), humanJoin(rec.ServiceNames()), rec.GeneralBookingLink)
	}
}

func unknownCenterMessage(centers map[string]models.FacilityRecord) string {
	return "I don't recognize that center. We have locations in " + centerList(centers) + " — which one are you curious about?"
}

func (s *DefaultFAQService) pick(candidates []string) string {
	choose := s.Choose
	if choose == nil {
		choose = rand.Intn
	}
	return candidates[choose(len(candidates))]
}

func lowerParam(v interface{}) string {
	str, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(str))
}

func sortedKeys(centers map[string]models.FacilityRecord) []string {
	keys := make([]string, 0, len(centers))
	for k := range centers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// centerList renders the known centers as "Davis, Reno and Roseville".
func centerList(centers map[string]models.FacilityRecord) string {
	names := sortedKeys(centers)
	for i, n := range names {
		names[i] = title(n)
	}
	return humanJoin(names)
}

func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
