package commerce

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/application/ports"
	"github.com/kumisdelbalcon/balcon-api/internal/application/session"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/pkg/money"
)

const wompiCheckoutBase = "https://checkout.wompi.co/p/"

// Config datos del comercio para los enlaces salientes.
type Config struct {
	WhatsAppNumber string
	WompiPublicKey string
}

// CheckoutUseCase cierre de pedido: valida los datos del cliente y genera el
// mensaje de WhatsApp, el enlace de pago Wompi y el comprobante PDF.
type CheckoutUseCase struct {
	sessions *session.Store
	cfg      Config
	rng      *rand.Rand
	receipts ports.ReceiptGenerator
}

// NewCheckoutUseCase construye el caso de uso. rng alimenta el consecutivo de
// pago; se inyecta para poder sembrarlo en tests.
func NewCheckoutUseCase(sessions *session.Store, cfg Config, rng *rand.Rand, receipts ports.ReceiptGenerator) *CheckoutUseCase {
	return &CheckoutUseCase{sessions: sessions, cfg: cfg, rng: rng, receipts: receipts}
}

// Checkout valida el formulario y devuelve los enlaces del pedido.
// El carrito queda intacto: el cliente confirma por WhatsApp.
func (uc *CheckoutUseCase) Checkout(in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	order, err := uc.buildOrder(in)
	if err != nil {
		return nil, err
	}

	resp := &dto.CheckoutResponse{
		Total:        order.Total,
		TotalText:    money.FormatCOP(order.Total),
		Reference:    order.Reference,
		WhatsAppLink: uc.whatsAppLink(order),
	}
	if order.Payment == entity.PaymentWompi {
		resp.WompiLink = uc.wompiLink(order)
	}
	return resp, nil
}

// Receipt genera el comprobante PDF del pedido.
func (uc *CheckoutUseCase) Receipt(ctx context.Context, in dto.CheckoutRequest) ([]byte, error) {
	order, err := uc.buildOrder(in)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.receipts.GenerateReceipt(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("generar comprobante: %w", err)
	}
	return pdf, nil
}

// buildOrder arma el pedido desde la sesión y valida los datos del cliente:
// nombre y teléfono siempre; dirección a domicilio, número de mesa en local.
func (uc *CheckoutUseCase) buildOrder(in dto.CheckoutRequest) (*entity.Order, error) {
	st, ok := uc.sessions.Get(in.SessionID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if st.Cart.Len() == 0 {
		return nil, domain.ErrEmptyCart
	}

	orderType := entity.OrderType(strings.ToLower(strings.TrimSpace(in.OrderType)))
	if orderType != entity.OrderDelivery && orderType != entity.OrderTable {
		return nil, fmt.Errorf("%w: order_type debe ser domicilio o mesa", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, fmt.Errorf("%w: completa tus datos para finalizar el pedido", domain.ErrInvalidInput)
	}
	if orderType == entity.OrderDelivery && strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: indica la dirección de entrega", domain.ErrInvalidInput)
	}
	if orderType == entity.OrderTable && strings.TrimSpace(in.TableNumber) == "" {
		return nil, fmt.Errorf("%w: indica tu número de mesa", domain.ErrInvalidInput)
	}
	payment, err := parsePayment(in.Payment)
	if err != nil {
		return nil, err
	}

	address := in.Address
	if orderType == entity.OrderTable {
		address = "Local - Mesa " + in.TableNumber
	}

	return &entity.Order{
		Items:        st.Cart.Lines(),
		Total:        st.Cart.Total(),
		CustomerName: in.Name,
		Phone:        in.Phone,
		Address:      address,
		TableNumber:  in.TableNumber,
		Type:         orderType,
		Payment:      payment,
		Reference:    fmt.Sprintf("KB-%d", 10000+uc.rng.Intn(90000)),
	}, nil
}

// whatsAppLink arma el enlace wa.me con el resumen del pedido.
func (uc *CheckoutUseCase) whatsAppLink(order *entity.Order) string {
	var items strings.Builder
	for _, it := range order.Items {
		fmt.Fprintf(&items, "- %s (%s)\n", it.Name, money.FormatCOP(it.Price))
	}

	typeLabel := "🏠 A domicilio"
	details := fmt.Sprintf("*Dirección:* %s", order.Address)
	if order.Type == entity.OrderTable {
		typeLabel = "🪑 Para la mesa"
		details = fmt.Sprintf("*Mesa:* %s", order.TableNumber)
	}

	msg := fmt.Sprintf(`*¡Hola Kumis del Balcón!* 🐮
Quiero hacer el siguiente pedido (*%s*):

%s
💰 *TOTAL: %s*

📍 *Datos del Cliente:*
*Nombre:* %s
%s
*Tel:* %s
*Pago:* %s
`, typeLabel, items.String(), money.FormatCOP(order.Total), order.CustomerName, details, order.Phone, order.Payment)

	return fmt.Sprintf("https://wa.me/%s?text=%s", uc.cfg.WhatsAppNumber, url.QueryEscape(msg))
}

// wompiLink arma el enlace del checkout de Wompi. El monto va en centavos.
func (uc *CheckoutUseCase) wompiLink(order *entity.Order) string {
	q := url.Values{}
	q.Set("public-key", uc.cfg.WompiPublicKey)
	q.Set("currency", "COP")
	q.Set("amount-in-cents", fmt.Sprintf("%d", order.Total*100))
	q.Set("reference", order.Reference)
	return wompiCheckoutBase + "?" + q.Encode()
}

func parsePayment(s string) (entity.PaymentMethod, error) {
	switch entity.PaymentMethod(s) {
	case entity.PaymentNequi, entity.PaymentCash, entity.PaymentWompi:
		return entity.PaymentMethod(s), nil
	case "":
		return entity.PaymentCash, nil
	default:
		return "", fmt.Errorf("%w: método de pago desconocido: %q", domain.ErrInvalidInput, s)
	}
}
