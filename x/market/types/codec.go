package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/market concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON
// serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterProvider{}, "gridmesh/market/MsgRegisterProvider", nil)
	cdc.RegisterConcrete(&MsgUpdatePricing{}, "gridmesh/market/MsgUpdatePricing", nil)
	cdc.RegisterConcrete(&MsgAddStake{}, "gridmesh/market/MsgAddStake", nil)
	cdc.RegisterConcrete(&MsgWithdrawStake{}, "gridmesh/market/MsgWithdrawStake", nil)
	cdc.RegisterConcrete(&MsgCreateRequest{}, "gridmesh/market/MsgCreateRequest", nil)
	cdc.RegisterConcrete(&MsgAcceptRequest{}, "gridmesh/market/MsgAcceptRequest", nil)
	cdc.RegisterConcrete(&MsgSubmitResult{}, "gridmesh/market/MsgSubmitResult", nil)
	cdc.RegisterConcrete(&MsgVerifyRequest{}, "gridmesh/market/MsgVerifyRequest", nil)
	cdc.RegisterConcrete(&MsgDisputeRequest{}, "gridmesh/market/MsgDisputeRequest", nil)
	cdc.RegisterConcrete(&MsgCancelRequest{}, "gridmesh/market/MsgCancelRequest", nil)
	cdc.RegisterConcrete(&MsgSlashProvider{}, "gridmesh/market/MsgSlashProvider", nil)
	cdc.RegisterConcrete(&MsgResolveDispute{}, "gridmesh/market/MsgResolveDispute", nil)
	cdc.RegisterConcrete(&MsgWithdrawFees{}, "gridmesh/market/MsgWithdrawFees", nil)
	cdc.RegisterConcrete(&MsgSetTreasury{}, "gridmesh/market/MsgSetTreasury", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "gridmesh/market/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/market message types with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterProvider{},
		&MsgUpdatePricing{},
		&MsgAddStake{},
		&MsgWithdrawStake{},
		&MsgCreateRequest{},
		&MsgAcceptRequest{},
		&MsgSubmitResult{},
		&MsgVerifyRequest{},
		&MsgDisputeRequest{},
		&MsgCancelRequest{},
		&MsgSlashProvider{},
		&MsgResolveDispute{},
		&MsgWithdrawFees{},
		&MsgSetTreasury{},
		&MsgUpdateParams{},
	)
}

var (
	amino = codec.NewLegacyAmino()
)

func init() {
	RegisterLegacyAminoCodec(amino)
}
