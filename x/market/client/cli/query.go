package cli

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// GetQueryCmd returns the cli query commands for the market module
func GetQueryCmd() *cobra.Command {
	marketQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the market module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	marketQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryProvider(),
		GetCmdQueryProviderCount(),
		GetCmdQueryRequest(),
		GetCmdQueryRequestsByRequester(),
		GetCmdQueryMarketState(),
		GetCmdQueryEstimateCost(),
		GetCmdQueryFeePool(),
		GetCmdQuerySlashRecords(),
	)

	return marketQueryCmd
}

func printJSON(clientCtx client.Context, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current market module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProvider returns the command to query a provider by address
func GetCmdQueryProvider() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider [address]",
		Short: "Query a registered provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Provider(context.Background(), &types.QueryProviderRequest{Address: args[0]})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProviderCount returns the command to query the provider counter
func GetCmdQueryProviderCount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider-count",
		Short: "Query the total number of registered providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.ProviderCount(context.Background(), &types.QueryProviderCountRequest{})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequest returns the command to query a request by ID
func GetCmdQueryRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request [request-id]",
		Short: "Query a compute request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Request(context.Background(), &types.QueryRequestRequest{Id: args[0]})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequestsByRequester returns the command to query one account's requests
func GetCmdQueryRequestsByRequester() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests [requester]",
		Short: "Query all requests created by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.RequestsByRequester(context.Background(), &types.QueryRequestsByRequesterRequest{Requester: args[0]})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryMarketState returns the command to query the oscillator state
func GetCmdQueryMarketState() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Query the market-wide supply, demand and price state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.MarketState(context.Background(), &types.QueryMarketStateRequest{})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryEstimateCost returns the command to quote a request cost
func GetCmdQueryEstimateCost() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate-cost [estimated-size]",
		Short: "Quote the cost and required escrow for a workload size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			size, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.EstimateCost(context.Background(), &types.QueryEstimateCostRequest{EstimatedSize: size})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryFeePool returns the command to query the fee pool
func GetCmdQueryFeePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee-pool",
		Short: "Query the accrued market fees and treasury address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.FeePool(context.Background(), &types.QueryFeePoolRequest{})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySlashRecords returns the command to query slash records for a provider
func GetCmdQuerySlashRecords() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slash-records [provider]",
		Short: "Query slash records against a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SlashRecords(context.Background(), &types.QuerySlashRecordsRequest{Provider: args[0]})
			if err != nil {
				return err
			}
			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
