package models

// WebhookRequest is the fulfillment payload sent by the conversational platform.
type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
	Session     string      `json:"session,omitempty"`
}

// QueryResult carries the matched intent and collected parameters.
type QueryResult struct {
	QueryText  string                 `json:"queryText,omitempty"`
	Intent     Intent                 `json:"intent"`
	Parameters map[string]interface{} `json:"parameters"`
}

// Intent identifies the matched conversational intent by display name.
type Intent struct {
	DisplayName string `json:"displayName"`
}

// FollowupEvent instructs the platform which conversational step to invoke next.
type FollowupEvent struct {
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode"`
}

// WebhookResponse is returned to the platform. FulfillmentText is omitted on
// the success path, FollowupEventInput on plain-text paths.
type WebhookResponse struct {
	FulfillmentText    string         `json:"fulfillmentText,omitempty"`
	FollowupEventInput *FollowupEvent `json:"followupEventInput,omitempty"`
}
