package models

// Provisioning statuses reported back through the driver agent
const (
	ProvisioningStatusActive        = "ACTIVE"
	ProvisioningStatusDeleted       = "DELETED"
	ProvisioningStatusError         = "ERROR"
	ProvisioningStatusPendingCreate = "PENDING_CREATE"
	ProvisioningStatusPendingUpdate = "PENDING_UPDATE"
	ProvisioningStatusPendingDelete = "PENDING_DELETE"
)

// Operating statuses
const (
	OperatingStatusOnline    = "ONLINE"
	OperatingStatusOffline   = "OFFLINE"
	OperatingStatusDegraded  = "DEGRADED"
	OperatingStatusDraining  = "DRAINING"
	OperatingStatusError     = "ERROR"
	OperatingStatusNoMonitor = "NO_MONITOR"
)

// Listener and pool protocols
const (
	ProtocolHTTP            = "HTTP"
	ProtocolHTTPS           = "HTTPS"
	ProtocolProxy           = "PROXY"
	ProtocolSCTP            = "SCTP"
	ProtocolTCP             = "TCP"
	ProtocolTerminatedHTTPS = "TERMINATED_HTTPS"
	ProtocolUDP             = "UDP"
)

// Load balancing algorithms
const (
	LBAlgorithmRoundRobin       = "ROUND_ROBIN"
	LBAlgorithmLeastConnections = "LEAST_CONNECTIONS"
	LBAlgorithmSourceIP         = "SOURCE_IP"
	LBAlgorithmSourceIPPort     = "SOURCE_IP_PORT"
)

// Session persistence types and the keys used inside the persistence map
const (
	SessionPersistenceSourceIP   = "SOURCE_IP"
	SessionPersistenceHTTPCookie = "HTTP_COOKIE"
	SessionPersistenceAppCookie  = "APP_COOKIE"

	SessionPersistenceTypeKey       = "type"
	SessionPersistenceCookieNameKey = "cookie_name"
)

// Health monitor types
const (
	HealthMonitorHTTP       = "HTTP"
	HealthMonitorHTTPS      = "HTTPS"
	HealthMonitorPing       = "PING"
	HealthMonitorSCTP       = "SCTP"
	HealthMonitorTCP        = "TCP"
	HealthMonitorTLSHello   = "TLS-HELLO"
	HealthMonitorUDPConnect = "UDP-CONNECT"
)

// L7 policy actions
const (
	L7PolicyActionRedirectPrefix = "REDIRECT_PREFIX"
	L7PolicyActionRedirectToPool = "REDIRECT_TO_POOL"
	L7PolicyActionRedirectToURL  = "REDIRECT_TO_URL"
	L7PolicyActionReject         = "REJECT"
)

// L7 rule types
const (
	L7RuleTypeCookie          = "COOKIE"
	L7RuleTypeFileType        = "FILE_TYPE"
	L7RuleTypeHeader          = "HEADER"
	L7RuleTypeHostName        = "HOST_NAME"
	L7RuleTypePath            = "PATH"
	L7RuleTypeSSLConnHasCert  = "SSL_CONN_HAS_CERT"
	L7RuleTypeSSLVerifyResult = "SSL_VERIFY_RESULT"
	L7RuleTypeSSLDNField      = "SSL_DN_FIELD"
)

// L7 rule compare types
const (
	L7RuleCompareTypeContains   = "CONTAINS"
	L7RuleCompareTypeEndsWith   = "ENDS_WITH"
	L7RuleCompareTypeEqualTo    = "EQUAL_TO"
	L7RuleCompareTypeRegex      = "REGEX"
	L7RuleCompareTypeStartsWith = "STARTS_WITH"
)

// Client authentication modes for TLS terminated listeners
const (
	ClientAuthNone      = "NONE"
	ClientAuthOptional  = "OPTIONAL"
	ClientAuthMandatory = "MANDATORY"
)

// TLS and SSL protocol identifiers
const (
	SSLVersion3  = "SSLv3"
	TLSVersion1  = "TLSv1"
	TLSVersion11 = "TLSv1.1"
	TLSVersion12 = "TLSv1.2"
	TLSVersion13 = "TLSv1.3"
)

// ALPN protocol identifiers
const (
	ALPNProtocolHTTP10 = "http/1.0"
	ALPNProtocolHTTP11 = "http/1.1"
	ALPNProtocolHTTP2  = "h2"
)

// Keys every flavor and availability zone metadata description must carry
const (
	MetadataKeyName        = "name"
	MetadataKeyDescription = "description"
)
