package constant

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodEwallet  PaymentMethod = "ewallet"
)

// PaymentMethodLabel is what the merchant sees in the order message.
var PaymentMethodLabel = map[PaymentMethod]string{
	PaymentMethodCash:     "Cash",
	PaymentMethodTransfer: "Bank Transfer",
	PaymentMethodEwallet:  "E-Wallet",
}

func (p PaymentMethod) Valid() bool {
	_, ok := PaymentMethodLabel[p]
	return ok
}

const (
	WhatsappBaseURL = "https://wa.me/"

	DefaultProductCategory = "Main Course"
)
