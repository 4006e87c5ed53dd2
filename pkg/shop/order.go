package shop

// PaymentMethod is the closed payment enum.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

func (m PaymentMethod) valid() bool {
	return m == PaymentCard || m == PaymentCash
}

// Field names the order-draft fields a form can change.
type Field string

const (
	FieldPayment Field = "payment"
	FieldAddress Field = "address"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// OrderDraft is the in-progress checkout form. It never carries items
// or a total; those are attached only in the Order projection built at
// submission time.
type OrderDraft struct {
	Payment PaymentMethod `json:"payment"`
	Address string        `json:"address"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
}

// FormErrors maps a field to a human-readable message. A field absent
// from the map is valid.
type FormErrors map[Field]string

// Order is the outbound request body for order submission: the draft
// plus the basket contents at the moment of submission.
type Order struct {
	Payment PaymentMethod `json:"payment"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address string        `json:"address"`
	Items   []string      `json:"items"`
	Total   int           `json:"total"`
}

// OrderResult is the server's answer to a successful submission.
type OrderResult struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}

// validate recomputes the full errors map from scratch; errors are
// never patched incrementally.
func (d OrderDraft) validate() FormErrors {
	errs := make(FormErrors)
	if d.Payment == "" {
		errs[FieldPayment] = "выберите способ оплаты"
	} else if !d.Payment.valid() {
		errs[FieldPayment] = "неизвестный способ оплаты"
	}
	if d.Address == "" {
		errs[FieldAddress] = "укажите адрес доставки"
	}
	if d.Email == "" {
		errs[FieldEmail] = "укажите email"
	}
	if d.Phone == "" {
		errs[FieldPhone] = "укажите телефон"
	}
	return errs
}
