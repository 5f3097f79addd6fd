// Package vnpay implementa el adaptador del gateway de pago simulado.
//
// Es un mock fiel al sandbox de VNPay: construye la URL de redirección con
// los parámetros canónicos del protocolo y un token de integridad que NO es
// criptográfico (base64 del query + secreto, recortado a 32 chars). Si esto
// alguna vez se usa contra el gateway real, el token debe reemplazarse por
// HMAC-SHA512 con el secreto del merchant.
package vnpay

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"net/url"
	"time"

	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Config parámetros del merchant para el sandbox.
type Config struct {
	TmnCode    string // código del merchant
	HashSecret string // secreto compartido del token de integridad
	URL        string // URL del gateway sandbox
	ReturnURL  string // página de retorno por defecto
}

// Service adaptador del gateway. Sin estado mutable: todo es cómputo puro;
// persistir la orden resultante es responsabilidad del caller.
type Service struct {
	cfg Config
	now func() time.Time
}

// New construye el adaptador.
func New(cfg Config) *Service {
	return &Service{cfg: cfg, now: time.Now}
}

// PaymentRequest parámetros de una solicitud de pago saliente.
type PaymentRequest struct {
	Amount    decimal.Decimal // monto en la unidad base; el protocolo lo escala x100
	OrderInfo string
	OrderID   string
	ReturnURL string // opcional; por defecto cfg.ReturnURL
	IPAddr    string // opcional; por defecto 127.0.0.1
}

// PaymentResponse resultado de construir la URL de pago. El camino de fallo
// se conserva por contrato aunque con los inputs actuales no es alcanzable.
type PaymentResponse struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"payment_url,omitempty"`
	Message    string `json:"message,omitempty"`
}

const dateLayout = "20060102150405" // yyyyMMddHHmmss, requerido por VNPay

// CreatePaymentURL arma el mapa de parámetros canónicos, los ordena
// lexicográficamente, serializa el query con percent-encoding y le anexa el
// token vnp_SecureHash derivado del query + secreto.
func (s *Service) CreatePaymentURL(req PaymentRequest) PaymentResponse {
	base, err := url.Parse(s.cfg.URL)
	if err != nil {
		return PaymentResponse{Success: false, Message: "Lỗi tạo URL thanh toán"}
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = s.cfg.ReturnURL
	}
	ipAddr := req.IPAddr
	if ipAddr == "" {
		ipAddr = "127.0.0.1"
	}
	now := s.now()

	params := url.Values{}
	params.Set("vnp_Version", "2.1.0")
	params.Set("vnp_Command", "pay")
	params.Set("vnp_TmnCode", s.cfg.TmnCode)
	params.Set("vnp_Locale", "vn")
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_TxnRef", req.OrderID)
	params.Set("vnp_OrderInfo", req.OrderInfo)
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Amount", req.Amount.Mul(decimal.NewFromInt(100)).String())
	params.Set("vnp_ReturnUrl", returnURL)
	params.Set("vnp_IpAddr", ipAddr)
	params.Set("vnp_CreateDate", now.Format(dateLayout))
	params.Set("vnp_ExpireDate", now.Add(15*time.Minute).Format(dateLayout))

	// Encode ordena las claves lexicográficamente y percent-encodea los valores.
	query := params.Encode()
	secureHash := s.secureHash(query)

	return PaymentResponse{
		Success:    true,
		PaymentURL: fmt.Sprintf("%s?%s&vnp_SecureHash=%s", base.String(), query, secureHash),
	}
}

// secureHash token de integridad del mock: base64(query + secreto)[:32].
// Codificación reversible, no un MAC.
func (s *Service) secureHash(query string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(query + s.cfg.HashSecret))
	if len(encoded) > 32 {
		encoded = encoded[:32]
	}
	return encoded
}

// Mensajes por código de respuesta del protocolo VNPay (texto oficial del sandbox).
var responseMessages = map[string]string{
	"07": "Trừ tiền thành công. Giao dịch bị nghi ngờ (liên quan tới lừa đảo, giao dịch bất thường).",
	"09": "Giao dịch không thành công do: Thẻ/Tài khoản của khách hàng chưa đăng ký dịch vụ InternetBanking tại ngân hàng.",
	"10": "Giao dịch không thành công do: Khách hàng xác thực thông tin thẻ/tài khoản không đúng quá 3 lần",
	"11": "Giao dịch không thành công do: Đã hết hạn chờ thanh toán. Xin quý khách vui lòng thực hiện lại giao dịch.",
	"12": "Giao dịch không thành công do: Thẻ/Tài khoản của khách hàng bị khóa.",
	"13": "Giao dịch không thành công do Quý khách nhập sai mật khẩu xác thực giao dịch (OTP).",
	"24": "Giao dịch không thành công do: Khách hàng hủy giao dịch",
	"51": "Giao dịch không thành công do: Tài khoản của quý khách không đủ số dư để thực hiện giao dịch.",
	"65": "Giao dịch không thành công do: Tài khoản của Quý khách đã vượt quá hạn mức giao dịch trong ngày.",
	"75": "Ngân hàng thanh toán đang bảo trì.",
	"79": "Giao dịch không thành công do: KH nhập sai mật khẩu thanh toán quá số lần quy định.",
}

const (
	successMessage = "Thanh toán thành công"
	genericFailure = "Giao dịch không thành công"
)

// VerifyPaymentResponse interpreta los parámetros del callback del gateway.
// No valida vnp_SecureHash: el mock confía en el redirect, igual que emite
// un token que no es un MAC. Código "00" = éxito con monto confirmado
// (escalado /100); cualquier otro
// código mapea a fallo con el mensaje de la tabla fija, o el genérico para
// códigos desconocidos. Siempre devuelve un resultado definitivo: este
// sandbox nunca reporta "pending".
func (s *Service) VerifyPaymentResponse(params map[string]string) entity.PaymentResult {
	code := params["vnp_ResponseCode"]
	txnRef := params["vnp_TxnRef"]

	if code == "00" {
		amount := decimal.Zero
		if raw := params["vnp_Amount"]; raw != "" {
			if v, err := decimal.NewFromString(raw); err == nil {
				amount = v.Div(decimal.NewFromInt(100))
			}
		}
		return entity.PaymentResult{
			Success:           true,
			TransactionStatus: entity.TxSuccess,
			Message:           successMessage,
			OrderID:           txnRef,
			Amount:            amount,
		}
	}

	msg, ok := responseMessages[code]
	if !ok {
		msg = genericFailure
	}
	return entity.PaymentResult{
		Success:           false,
		TransactionStatus: entity.TxFailed,
		Message:           msg,
		OrderID:           txnRef,
	}
}

// GenerateOrderID produce un id "suficientemente único" para la demo:
// prefijo fijo + timestamp en milisegundos + entero aleatorio < 1000.
// Sin detección de colisiones; no es una garantía real de unicidad.
func (s *Service) GenerateOrderID() string {
	return fmt.Sprintf("HW%d%d", s.now().UnixMilli(), rand.IntN(1000))
}
