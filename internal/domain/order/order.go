package order

import (
	"fmt"
	"strconv"
	"time"

	vo "paybridge/internal/domain/order/valueobjects"
	"paybridge/internal/shared/biztime"
)

// StatusHistoryEntry is an append-only comment on the order's status history.
type StatusHistoryEntry struct {
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Order mirrors the merchant order record this service reads and transitions.
// The order itself is owned by the external order store; this aggregate only
// exposes the state transitions the reconciliation flow is allowed to drive.
type Order struct {
	id          uint
	incrementID string
	state       vo.OrderState
	status      string

	totalDue      vo.Amount
	customerEmail string
	locale        string

	billingAddress  vo.Address
	shippingAddress vo.Address

	emailSent        bool
	customerNotified bool
	statusHistory    []StatusHistoryEntry

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewOrder(incrementID string, totalDue vo.Amount, customerEmail string) (*Order, error) {
	if incrementID == "" {
		return nil, fmt.Errorf("increment ID is required")
	}
	if !totalDue.IsPositive() {
		return nil, fmt.Errorf("total due must be positive")
	}

	now := biztime.NowUTC()
	return &Order{
		incrementID:   incrementID,
		state:         vo.OrderStateNew,
		status:        string(vo.OrderStateNew),
		totalDue:      totalDue,
		customerEmail: customerEmail,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// MarkProcessing transitions the order to the processing state with the given
// default status. Returns false without touching anything when the order is
// already processing; the state never regresses from processing.
func (o *Order) MarkProcessing(status string) bool {
	if o.state.IsProcessing() {
		return false
	}

	o.state = vo.OrderStateProcessing
	o.status = status
	o.updatedAt = biztime.NowUTC()
	o.version++

	return true
}

// AddStatusHistory appends a comment to the order's status history.
func (o *Order) AddStatusHistory(comment string) {
	o.statusHistory = append(o.statusHistory, StatusHistoryEntry{
		Comment:   comment,
		Status:    o.status,
		CreatedAt: biztime.NowUTC(),
	})
	o.updatedAt = biztime.NowUTC()
}

func (o *Order) SetEmailSent() {
	o.emailSent = true
	o.updatedAt = biztime.NowUTC()
}

func (o *Order) SetCustomerNotified(notified bool) {
	o.customerNotified = notified
	o.updatedAt = biztime.NowUTC()
}

// MatchesGatewayReference reports whether the order reference the gateway
// returned names this order, by internal id or by increment id.
func (o *Order) MatchesGatewayReference(ref string) bool {
	if ref == "" {
		return false
	}
	return ref == strconv.FormatUint(uint64(o.id), 10) || ref == o.incrementID
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) IncrementID() string {
	return o.incrementID
}

func (o *Order) State() vo.OrderState {
	return o.state
}

func (o *Order) Status() string {
	return o.status
}

func (o *Order) TotalDue() vo.Amount {
	return o.totalDue
}

func (o *Order) Currency() string {
	return o.totalDue.Currency()
}

func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

func (o *Order) Locale() string {
	return o.locale
}

func (o *Order) BillingAddress() vo.Address {
	return o.billingAddress
}

func (o *Order) ShippingAddress() vo.Address {
	return o.shippingAddress
}

func (o *Order) EmailSent() bool {
	return o.emailSent
}

func (o *Order) CustomerNotified() bool {
	return o.customerNotified
}

func (o *Order) StatusHistory() []StatusHistoryEntry {
	return o.statusHistory
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetID sets the order ID after persistence (used by repository after Create)
func (o *Order) SetID(id uint) {
	o.id = id
}

// SetLocale sets the order's checkout locale.
func (o *Order) SetLocale(locale string) {
	o.locale = locale
}

// SetAddresses sets the billing and shipping address.
func (o *Order) SetAddresses(billing, shipping vo.Address) {
	o.billingAddress = billing
	o.shippingAddress = shipping
	o.updatedAt = biztime.NowUTC()
}

func ReconstructOrder(
	id uint,
	incrementID string,
	state vo.OrderState,
	status string,
	totalDue vo.Amount,
	customerEmail, locale string,
	billingAddress, shippingAddress vo.Address,
	emailSent, customerNotified bool,
	statusHistory []StatusHistoryEntry,
	version int,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		incrementID:      incrementID,
		state:            state,
		status:           status,
		totalDue:         totalDue,
		customerEmail:    customerEmail,
		locale:           locale,
		billingAddress:   billingAddress,
		shippingAddress:  shippingAddress,
		emailSent:        emailSent,
		customerNotified: customerNotified,
		statusHistory:    statusHistory,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}
