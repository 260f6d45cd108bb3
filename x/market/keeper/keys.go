package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// ProviderKeyPrefix is the prefix for provider storage
	ProviderKeyPrefix = []byte{0x02}

	// RequestKeyPrefix is the prefix for request storage
	RequestKeyPrefix = []byte{0x03}

	// MarketStateKey is the key for the market-wide oscillator singleton
	MarketStateKey = []byte{0x04}

	// RequesterNonceKeyPrefix is the prefix for per-requester request sequence counters
	RequesterNonceKeyPrefix = []byte{0x05}

	// RequestsByRequesterPrefix is the prefix for indexing requests by requester
	RequestsByRequesterPrefix = []byte{0x06}

	// RequestsByProviderPrefix is the prefix for indexing requests by provider
	RequestsByProviderPrefix = []byte{0x07}

	// RequestsByStatusPrefix is the prefix for indexing requests by status
	RequestsByStatusPrefix = []byte{0x08}

	// ActiveProvidersPrefix is the prefix for indexing active providers
	ActiveProvidersPrefix = []byte{0x09}

	// ProviderCountKey is the key for the registered provider counter
	ProviderCountKey = []byte{0x0A}

	// AccruedFeesKey is the key for the accumulated market fee balance
	AccruedFeesKey = []byte{0x0B}

	// TreasuryKey is the key for the fee treasury address
	TreasuryKey = []byte{0x0C}

	// SlashRecordKeyPrefix is the prefix for slash record storage
	SlashRecordKeyPrefix = []byte{0x0D}

	// NextSlashIDKey is the key for the next slash record ID counter
	NextSlashIDKey = []byte{0x0E}

	// SlashRecordsByProviderPrefix is the prefix for indexing slash records by provider
	SlashRecordsByProviderPrefix = []byte{0x0F}
)

// ProviderKey returns the store key for a provider
func ProviderKey(address sdk.AccAddress) []byte {
	return append(ProviderKeyPrefix, address.Bytes()...)
}

// RequestKey returns the store key for a request. Request IDs are fixed-width
// hex digests, so the raw string is a safe key component.
func RequestKey(requestID string) []byte {
	return append(RequestKeyPrefix, []byte(requestID)...)
}

// RequesterNonceKey returns the store key for a requester's sequence counter
func RequesterNonceKey(requester sdk.AccAddress) []byte {
	return append(RequesterNonceKeyPrefix, requester.Bytes()...)
}

// RequestByRequesterKey returns the index key for requests by requester
func RequestByRequesterKey(requester sdk.AccAddress, requestID string) []byte {
	return append(append(RequestsByRequesterPrefix, requester.Bytes()...), []byte(requestID)...)
}

// RequestsByRequesterIterKey returns the iteration prefix for one requester's requests
func RequestsByRequesterIterKey(requester sdk.AccAddress) []byte {
	return append(RequestsByRequesterPrefix, requester.Bytes()...)
}

// RequestByProviderKey returns the index key for requests by provider
func RequestByProviderKey(provider sdk.AccAddress, requestID string) []byte {
	return append(append(RequestsByProviderPrefix, provider.Bytes()...), []byte(requestID)...)
}

// RequestByStatusKey returns the index key for requests by status
func RequestByStatusKey(status uint32, requestID string) []byte {
	statusBz := make([]byte, 4)
	binary.BigEndian.PutUint32(statusBz, status)
	return append(append(RequestsByStatusPrefix, statusBz...), []byte(requestID)...)
}

// ActiveProviderKey returns the index key for active providers
func ActiveProviderKey(address sdk.AccAddress) []byte {
	return append(ActiveProvidersPrefix, address.Bytes()...)
}

// SlashRecordKey returns the store key for a slash record
func SlashRecordKey(slashID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, slashID)
	return append(SlashRecordKeyPrefix, bz...)
}

// SlashRecordByProviderKey returns the index key for slash records by provider
func SlashRecordByProviderKey(provider sdk.AccAddress, slashID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, slashID)
	return append(append(SlashRecordsByProviderPrefix, provider.Bytes()...), bz...)
}

// SlashRecordsByProviderIterKey returns the iteration prefix for one provider's slash records
func SlashRecordsByProviderIterKey(provider sdk.AccAddress) []byte {
	return append(SlashRecordsByProviderPrefix, provider.Bytes()...)
}
