package shop

// Topic names are the wire protocol between state, views and the
// orchestrator. State-originated events are "noun:verb"; per-keystroke
// form intents are "form.field:change" and are usually subscribed via
// the TopicOrderFields / TopicContactFields patterns.
//
// Each topic carries exactly one payload type:
//
//	TopicCatalogChanged    []Product
//	TopicCardSelect        Product
//	TopicPreviewChanged    Product
//	TopicBasketChanged     Basket
//	TopicValidationChanged ValidationState
//	order.*:change         FieldChange
//	contacts.*:change      FieldChange
//	TopicBasketOpen        nil
//	TopicOrderOpen         nil
//	TopicOrderSubmit       nil
//	TopicContactsSubmit    nil
//	TopicOrderDone         OrderResult
//	TopicOrderFailed       SubmitFailure
//	TopicModalOpen         nil
//	TopicModalClose        nil
const (
	TopicCatalogChanged    = "catalog:changed"
	TopicCardSelect        = "card:select"
	TopicPreviewChanged    = "preview:changed"
	TopicBasketChanged     = "basket:changed"
	TopicValidationChanged = "validation:changed"

	TopicBasketOpen     = "basket:open"
	TopicOrderOpen      = "order:open"
	TopicOrderSubmit    = "order:submit"
	TopicContactsSubmit = "contacts:submit"

	TopicOrderDone   = "order:done"
	TopicOrderFailed = "order:failed"

	TopicModalOpen  = "modal:open"
	TopicModalClose = "modal:close"

	// Patterns covering the per-field form intents.
	TopicOrderFields   = "order.*:change"
	TopicContactFields = "contacts.*:change"
)

// FieldTopic builds the exact intent topic for a single form field,
// e.g. FieldTopic("order", FieldAddress) == "order.address:change".
func FieldTopic(form string, field Field) string {
	return form + "." + string(field) + ":change"
}

// FieldChange is the payload of every form-field intent.
type FieldChange struct {
	Field Field  `json:"field"`
	Value string `json:"value"`
}

// ValidationState is the payload of validation:changed: the full errors
// map plus the two per-step validity signals derived from it.
type ValidationState struct {
	Errors        FormErrors `json:"errors"`
	OrderValid    bool       `json:"orderValid"`
	ContactsValid bool       `json:"contactsValid"`
}

// SubmitFailure is the payload of order:failed.
type SubmitFailure struct {
	Reason string `json:"reason"`
}
