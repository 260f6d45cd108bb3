package keeper

import (
	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// raiseReputation applies the bounded positive-outcome adjustment.
func raiseReputation(p *types.Provider) {
	if p.Reputation > types.ReputationMax-types.ReputationReward {
		p.Reputation = types.ReputationMax
		return
	}
	p.Reputation += types.ReputationReward
}

// lowerReputation applies the bounded negative-outcome adjustment. The
// penalty is larger than the reward so recovery from a slash takes many
// consecutive successes.
func lowerReputation(p *types.Provider) {
	if p.Reputation < types.ReputationPenalty {
		p.Reputation = 0
		return
	}
	p.Reputation -= types.ReputationPenalty
}
