package vnpay

// Identificadores de método de pago aceptados por el checkout.
const (
	MethodVNPay = "vnpay"
	MethodCOD   = "cod"
)

// PaymentMethod un método de pago ofrecido en el checkout. Solo los
// habilitados son aceptados; el resto se lista deshabilitado en la UI.
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Enabled     bool   `json:"enabled"`
}

// PaymentMethods catálogo fijo de métodos de pago de la demo.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{
			ID:          MethodVNPay,
			Name:        "VNPay",
			Description: "Thanh toán qua VNPay (ATM, Visa, MasterCard)",
			Icon:        "💳",
			Enabled:     true,
		},
		{
			ID:          "momo",
			Name:        "MoMo",
			Description: "Ví điện tử MoMo",
			Icon:        "📱",
			Enabled:     false,
		},
		{
			ID:          "zalopay",
			Name:        "ZaloPay",
			Description: "Ví điện tử ZaloPay",
			Icon:        "💰",
			Enabled:     false,
		},
		{
			ID:          MethodCOD,
			Name:        "Thanh toán khi nhận hàng",
			Description: "Thanh toán bằng tiền mặt khi nhận hàng",
			Icon:        "💵",
			Enabled:     true,
		},
	}
}

// MethodEnabled indica si el id corresponde a un método habilitado.
func MethodEnabled(id string) bool {
	for _, m := range PaymentMethods() {
		if m.ID == id {
			return m.Enabled
		}
	}
	return false
}
