package domain

// Capability identifies a single protectable action. Routes declare at most
// one required Capability.
type Capability string

const (
	CapCreateBank      Capability = "CREATE_BANK"
	CapUpdateBank      Capability = "UPDATE_BANK"
	CapDeleteBank      Capability = "DELETE_BANK"
	CapDeleteBankAdmin Capability = "DELETE_BANK_ADMIN"
	CapCreateSeller    Capability = "CREATE_SELLER"
	CapUpdateSeller    Capability = "UPDATE_SELLER"
	CapDeleteSeller    Capability = "DELETE_SELLER"
	CapCreateLottery   Capability = "CREATE_LOTTERY"
	CapUpdateLottery   Capability = "UPDATE_LOTTERY"
	CapDeleteLottery   Capability = "DELETE_LOTTERY"
	CapCreateTicket    Capability = "CREATE_TICKET"
	CapCancelTicket    Capability = "CANCEL_TICKET"
	CapManagePlans     Capability = "MANAGE_PLANS"
	CapManageLicenses  Capability = "MANAGE_LICENSES"
)

func (c Capability) String() string { return string(c) }

// Requirement is what a route demands from the caller. It is either
// Authenticated (any resolved account) or Require(capability).
type Requirement struct {
	capability Capability
}

// Authenticated requires a verified credential that maps to a known account.
func Authenticated() Requirement { return Requirement{} }

// Require demands, on top of authentication, a role granted capability c.
func Require(c Capability) Requirement { return Requirement{capability: c} }

// Capability returns the required capability and whether one is required.
func (r Requirement) Capability() (Capability, bool) {
	return r.capability, r.capability != ""
}

func (r Requirement) String() string {
	if r.capability == "" {
		return "authenticated"
	}
	return string(r.capability)
}
