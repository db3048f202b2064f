package txbuilder

import (
	"fmt"

	"github.com/lunfardo314/easytx/ledger"
)

// OutputPolicy decides what happens to the surplus at finalization. It is a closed choice:
// OutputPolicyForget or OutputPolicyOne
type OutputPolicy interface {
	outputPolicy()
	String() string
}

type (
	policyForget struct{}

	policyOne struct {
		address ledger.Address
	}
)

func (policyForget) outputPolicy() {}
func (policyOne) outputPolicy()    {}

// OutputPolicyForget leaves the surplus out of the outputs, it is paid as extra fee
func OutputPolicyForget() OutputPolicy {
	return policyForget{}
}

// OutputPolicyOne sends the surplus to the address as one change output appended
// after all the other outputs
func OutputPolicyOne(addr ledger.Address) OutputPolicy {
	return policyOne{address: addr}
}

func (policyForget) String() string {
	return "forget"
}

func (p policyOne) String() string {
	return fmt.Sprintf("one(%s)", p.address.String())
}

func applyOutputPolicy(policy OutputPolicy, outputs []ledger.Output, surplus ledger.Value) ([]ledger.Output, error) {
	switch p := policy.(type) {
	case policyForget:
		return outputs, nil
	case policyOne:
		if len(outputs) >= ledger.MaxOutputs {
			return nil, ledger.Errorf(ledger.ERR_TOO_MANY_OUTPUTS, "no room for the change output, max %d outputs", ledger.MaxOutputs)
		}
		return append(outputs, ledger.NewOutput(p.address, surplus)), nil
	}
	panic(fmt.Sprintf("applyOutputPolicy: unknown policy %T", policy))
}
