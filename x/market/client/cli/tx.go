package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// GetTxCmd returns the transaction commands for the market module
func GetTxCmd() *cobra.Command {
	marketTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Market transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	marketTxCmd.AddCommand(
		CmdRegisterProvider(),
		CmdUpdatePricing(),
		CmdAddStake(),
		CmdWithdrawStake(),
		CmdCreateRequest(),
		CmdAcceptRequest(),
		CmdSubmitResult(),
		CmdVerifyRequest(),
		CmdDisputeRequest(),
		CmdCancelRequest(),
		CmdSlashProvider(),
		CmdResolveDispute(),
		CmdWithdrawFees(),
		CmdSetTreasury(),
	)

	return marketTxCmd
}

func intFlag(cmd *cobra.Command, name string) (math.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return math.Int{}, err
	}
	value, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return value, nil
}

// CmdRegisterProvider returns a CLI command handler for registering as a compute provider
func CmdRegisterProvider() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-provider [stake]",
		Short: "Register as a compute provider",
		Long: `Register as a compute provider with locked stake, a workload id and pricing.

Example:
  $ gridmeshd tx market register-provider 1000000 \
    --workload-id "sha256:abc..." \
    --pricing-model per_unit \
    --price-per-unit 1000 \
    --max-concurrent-jobs 4 \
    --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			stake, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid stake amount: %s", args[0])
			}

			workloadID, err := cmd.Flags().GetString(FlagWorkloadID)
			if err != nil {
				return err
			}
			attestationID, err := cmd.Flags().GetString(FlagAttestationID)
			if err != nil {
				return err
			}
			modelStr, err := cmd.Flags().GetString(FlagPricingModel)
			if err != nil {
				return err
			}
			model, err := types.ParsePricingModel(modelStr)
			if err != nil {
				return err
			}
			pricePerUnit, err := intFlag(cmd, FlagPricePerUnit)
			if err != nil {
				return err
			}
			pricePerCall, err := intFlag(cmd, FlagPricePerCall)
			if err != nil {
				return err
			}
			pricePerTime, err := intFlag(cmd, FlagPricePerTime)
			if err != nil {
				return err
			}
			maxConcurrent, err := cmd.Flags().GetUint64(FlagMaxConcurrentJobs)
			if err != nil {
				return err
			}

			msg := &types.MsgRegisterProvider{
				Provider:          clientCtx.GetFromAddress().String(),
				Stake:             stake,
				WorkloadId:        workloadID,
				AttestationId:     attestationID,
				PricingModel:      model,
				PricePerUnit:      pricePerUnit,
				PricePerCall:      pricePerCall,
				PricePerTime:      pricePerTime,
				MaxConcurrentJobs: maxConcurrent,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagWorkloadID, "", "Identifier of the workload the provider can run")
	cmd.Flags().String(FlagAttestationID, "", "Hex-encoded ed25519 attestation public key")
	cmd.Flags().String(FlagPricingModel, "per_unit", "Pricing model: per_unit, per_call, per_time or hybrid")
	cmd.Flags().String(FlagPricePerUnit, "0", "Price per compute unit")
	cmd.Flags().String(FlagPricePerCall, "0", "Price per call")
	cmd.Flags().String(FlagPricePerTime, "0", "Price per second")
	cmd.Flags().Uint64(FlagMaxConcurrentJobs, 1, "Maximum jobs the provider runs at once")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdatePricing returns a CLI command handler for updating provider pricing
func CmdUpdatePricing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-pricing",
		Short: "Update provider pricing metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			modelStr, err := cmd.Flags().GetString(FlagPricingModel)
			if err != nil {
				return err
			}
			model, err := types.ParsePricingModel(modelStr)
			if err != nil {
				return err
			}
			pricePerUnit, err := intFlag(cmd, FlagPricePerUnit)
			if err != nil {
				return err
			}
			pricePerCall, err := intFlag(cmd, FlagPricePerCall)
			if err != nil {
				return err
			}
			pricePerTime, err := intFlag(cmd, FlagPricePerTime)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdatePricing{
				Provider:     clientCtx.GetFromAddress().String(),
				PricingModel: model,
				PricePerUnit: pricePerUnit,
				PricePerCall: pricePerCall,
				PricePerTime: pricePerTime,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagPricingModel, "per_unit", "Pricing model: per_unit, per_call, per_time or hybrid")
	cmd.Flags().String(FlagPricePerUnit, "0", "Price per compute unit")
	cmd.Flags().String(FlagPricePerCall, "0", "Price per call")
	cmd.Flags().String(FlagPricePerTime, "0", "Price per second")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddStake returns a CLI command handler for topping up provider stake
func CmdAddStake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-stake [amount]",
		Short: "Add stake to your provider registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[0])
			}

			msg := &types.MsgAddStake{
				Provider: clientCtx.GetFromAddress().String(),
				Amount:   amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawStake returns a CLI command handler for withdrawing provider stake
func CmdWithdrawStake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-stake [amount]",
		Short: "Withdraw stake from your provider registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[0])
			}

			msg := &types.MsgWithdrawStake{
				Provider: clientCtx.GetFromAddress().String(),
				Amount:   amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateRequest returns a CLI command handler for creating a compute request
func CmdCreateRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-request [workload-id]",
		Short: "Create an escrowed compute request",
		Long: `Create an escrowed compute request for a workload.

Example:
  $ gridmeshd tx market create-request "sha256:abc..." \
    --input-hash deadbeef \
    --estimated-size 1000 \
    --max-payment 2000000 \
    --duration-seconds 3600 \
    --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			inputHash, err := cmd.Flags().GetString(FlagInputHash)
			if err != nil {
				return err
			}
			estimatedSize, err := cmd.Flags().GetUint64(FlagEstimatedSize)
			if err != nil {
				return err
			}
			maxPayment, err := intFlag(cmd, FlagMaxPayment)
			if err != nil {
				return err
			}
			duration, err := cmd.Flags().GetInt64(FlagDurationSeconds)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateRequest{
				Requester:       clientCtx.GetFromAddress().String(),
				WorkloadId:      args[0],
				InputHash:       inputHash,
				EstimatedSize:   estimatedSize,
				MaxPayment:      maxPayment,
				DurationSeconds: duration,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagInputHash, "", "Hash of the request input data")
	cmd.Flags().Uint64(FlagEstimatedSize, 0, "Estimated workload size in compute units")
	cmd.Flags().String(FlagMaxPayment, "0", "Maximum payment the requester will escrow")
	cmd.Flags().Int64(FlagDurationSeconds, 3600, "Seconds until the request deadline")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAcceptRequest returns a CLI command handler for accepting a pending request
func CmdAcceptRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept-request [request-id]",
		Short: "Accept a pending compute request as a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAcceptRequest{
				Provider:  clientCtx.GetFromAddress().String(),
				RequestId: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitResult returns a CLI command handler for submitting a result hash
func CmdSubmitResult() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-result [request-id]",
		Short: "Submit the result hash for an active request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			resultHash, err := cmd.Flags().GetString(FlagResultHash)
			if err != nil {
				return err
			}
			sigHex, err := cmd.Flags().GetString(FlagSignature)
			if err != nil {
				return err
			}
			var signature []byte
			if sigHex != "" {
				signature, err = hex.DecodeString(sigHex)
				if err != nil {
					return fmt.Errorf("invalid signature hex: %w", err)
				}
			}

			msg := &types.MsgSubmitResult{
				Provider:   clientCtx.GetFromAddress().String(),
				RequestId:  args[0],
				ResultHash: resultHash,
				Signature:  signature,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagResultHash, "", "Hash of the computed result")
	cmd.Flags().String(FlagSignature, "", "Hex-encoded ed25519 signature over the result")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdVerifyRequest returns a CLI command handler for verifying a completed result
func CmdVerifyRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-request [request-id]",
		Short: "Accept a completed result and release escrow to the provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgVerifyRequest{
				Requester: clientCtx.GetFromAddress().String(),
				RequestId: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDisputeRequest returns a CLI command handler for disputing a completed result
func CmdDisputeRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispute-request [request-id]",
		Short: "Contest a completed result within the dispute window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			reason, err := cmd.Flags().GetString(FlagReason)
			if err != nil {
				return err
			}

			msg := &types.MsgDisputeRequest{
				Requester: clientCtx.GetFromAddress().String(),
				RequestId: args[0],
				Reason:    reason,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagReason, "", "Reason for the dispute")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelRequest returns a CLI command handler for cancelling a pending request
func CmdCancelRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-request [request-id]",
		Short: "Cancel a pending request and refund its escrow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCancelRequest{
				Requester: clientCtx.GetFromAddress().String(),
				RequestId: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSlashProvider returns a CLI command handler for slashing an overdue request's provider
func CmdSlashProvider() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slash-provider [request-id]",
		Short: "Slash the provider of an overdue active request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSlashProvider{
				Caller:    clientCtx.GetFromAddress().String(),
				RequestId: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResolveDispute returns a CLI command handler for resolving a dispute
func CmdResolveDispute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve-dispute [request-id] [favor-requester]",
		Short: "Resolve a disputed request (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			favorRequester, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid favor-requester value: %w", err)
			}

			msg := &types.MsgResolveDispute{
				Authority:      clientCtx.GetFromAddress().String(),
				RequestId:      args[0],
				FavorRequester: favorRequester,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawFees returns a CLI command handler for sweeping fees to the treasury
func CmdWithdrawFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-fees",
		Short: "Sweep accrued market fees to the treasury (authority only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawFees{
				Authority: clientCtx.GetFromAddress().String(),
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetTreasury returns a CLI command handler for updating the treasury address
func CmdSetTreasury() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-treasury [address]",
		Short: "Set the fee treasury address (authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSetTreasury{
				Authority: clientCtx.GetFromAddress().String(),
				Treasury:  args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
