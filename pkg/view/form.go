package view

import (
	"strings"

	"github.com/nickovin/weblarek-go/pkg/events"
	"github.com/nickovin/weblarek-go/pkg/failfast"
	"github.com/nickovin/weblarek-go/pkg/shop"
)

func fieldErrorsText(errs shop.FormErrors, fields ...shop.Field) string {
	var msgs []string
	for _, f := range fields {
		if msg, ok := errs[f]; ok {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, "; ")
}

// OrderForm renders the first checkout step: payment method and
// delivery address. Every keystroke and payment click leaves as an
// order.<field>:change intent; submit emits order:submit and is gated
// on the order-step validity signal.
type OrderForm struct {
	bus *events.Bus
}

// NewOrderForm binds the form widget to the bus.
func NewOrderForm(bus *events.Bus) *OrderForm {
	failfast.NotNil(bus, "bus")
	return &OrderForm{bus: bus}
}

func (f *OrderForm) change(field shop.Field, value string) {
	emit(f.bus, shop.FieldTopic("order", field), shop.FieldChange{Field: field, Value: value})
}

func (f *OrderForm) paymentButton(method shop.PaymentMethod, label string, current shop.PaymentMethod) *Node {
	class := "button button_alt"
	if current == method {
		class += " button_alt-active"
	}
	return TextEl("button", class, label).
		OnClick(func() { f.change(shop.FieldPayment, string(method)) })
}

// Render produces the form from the draft and the current validation
// state.
func (f *OrderForm) Render(draft shop.OrderDraft, vs shop.ValidationState) *Node {
	address := TextEl("input", "form__input form__input_address", draft.Address).
		OnInput(func(v string) { f.change(shop.FieldAddress, v) })

	submit := TextEl("button", "order__button", "Далее").
		OnClick(func() { emit(f.bus, shop.TopicOrderSubmit, nil) })
	submit.Disabled = !vs.OrderValid

	return El("form", "form form_order",
		El("div", "order__buttons",
			f.paymentButton(shop.PaymentCard, "Онлайн", draft.Payment),
			f.paymentButton(shop.PaymentCash, "При получении", draft.Payment),
		),
		address,
		submit,
		TextEl("span", "form__errors", fieldErrorsText(vs.Errors, shop.FieldPayment, shop.FieldAddress)),
	)
}

// ContactsForm renders the second checkout step: email and phone.
// Field intents leave as contacts.<field>:change; submit emits
// contacts:submit and is gated on the contacts-step validity signal.
type ContactsForm struct {
	bus *events.Bus
}

// NewContactsForm binds the form widget to the bus.
func NewContactsForm(bus *events.Bus) *ContactsForm {
	failfast.NotNil(bus, "bus")
	return &ContactsForm{bus: bus}
}

func (f *ContactsForm) change(field shop.Field, value string) {
	emit(f.bus, shop.FieldTopic("contacts", field), shop.FieldChange{Field: field, Value: value})
}

// Render produces the form from the draft and the current validation
// state.
func (f *ContactsForm) Render(draft shop.OrderDraft, vs shop.ValidationState) *Node {
	email := TextEl("input", "form__input form__input_email", draft.Email).
		OnInput(func(v string) { f.change(shop.FieldEmail, v) })
	phone := TextEl("input", "form__input form__input_phone", draft.Phone).
		OnInput(func(v string) { f.change(shop.FieldPhone, v) })

	submit := TextEl("button", "contacts__button", "Оплатить").
		OnClick(func() { emit(f.bus, shop.TopicContactsSubmit, nil) })
	submit.Disabled = !vs.ContactsValid

	return El("form", "form form_contacts",
		email,
		phone,
		submit,
		TextEl("span", "form__errors", fieldErrorsText(vs.Errors, shop.FieldEmail, shop.FieldPhone)),
	)
}
