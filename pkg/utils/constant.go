package utils

const ADMIN_ROLE = 64

// Order source channels
const (
	ORDER_SOURCE_MANUAL   = "manual"
	ORDER_SOURCE_IMPORT   = "import"
	ORDER_SOURCE_STORE    = "store"
	ORDER_SOURCE_WHATSAPP = "whatsapp"
)

// Canonical status codes seeded in the statuses table. Admins can rename or
// recode entries, the classifier falls back to the table for that case.
const (
	STATUS_CODE_PENDING         = "STS_001"
	STATUS_CODE_DRIVER_ASSIGNED = "STS_002"
	STATUS_CODE_DELIVERED       = "STS_003"
	STATUS_CODE_POSTPONED       = "STS_004"
	STATUS_CODE_RETURNED        = "STS_005"
	STATUS_CODE_COLLECTED       = "STS_006"
)

// Default status names (Arabic labels as shown on the dashboard)
const (
	STATUS_NAME_PENDING         = "بالانتظار"
	STATUS_NAME_DRIVER_ASSIGNED = "driver assigned"
	STATUS_NAME_DELIVERED       = "تم التوصيل"
	STATUS_NAME_POSTPONED       = "مؤجل"
	STATUS_NAME_RETURNED        = "مرتجع"
	STATUS_NAME_COLLECTED       = "تم التحصيل"
)

// Merchant slip workflow states
const (
	SLIP_STATUS_OPEN    = "open"
	SLIP_STATUS_SETTLED = "settled"
)

// Realtime events pushed to the gateway
const (
	EVENT_ORDER_UPDATED        = "order_updated"
	EVENT_ORDER_STATUS_CHANGED = "order_status_changed"
	EVENT_ORDER_DELETED        = "order_deleted"
)

// Print layout kinds
const (
	PRINT_KIND_POLICY  = "policy"
	PRINT_KIND_LABEL   = "label"
	PRINT_KIND_RECEIPT = "receipt"
)

const ORDER_ID_PREFIX = "ORD-"

const MAX_NOTES_LENGTH = 500

const TIME_FORMAT_FOR_QUERRY = "2006-01-02 15:04:05"
const DATE_FORMAT = "2006-01-02"

const (
	TABLE_ORDER                 = "orders"
	TABLE_DRIVER_PAYMENT_SLIP   = "driver_payment_slips"
	TABLE_MERCHANT_PAYMENT_SLIP = "merchant_payment_slips"
	TABLE_DRIVER_RETURN_SLIP    = "driver_return_slips"
	TABLE_MERCHANT_RETURN_SLIP  = "merchant_return_slips"
	TABLE_STATUS                = "statuses"
	TABLE_PRINT_SETTING         = "print_settings"
)
