package ofx

// AccountType is the type of a bank account.
type AccountType string

const (
	Checking    AccountType = "CHECKING"
	Savings     AccountType = "SAVINGS"
	MoneyMarket AccountType = "MONEYMRKT"
	CreditLine  AccountType = "CREDITLINE"
	CD          AccountType = "CD"
)

var ParseAccountType = oneOf(Checking, Savings, MoneyMarket, CreditLine, CD)

// BankAccount identifies a bank account (BANKACCTFROM, BANKACCTTO).
type BankAccount struct {
	BankID    string
	BranchID  string
	AccountID string
	Type      AccountType
	Key       string
}

// CreditCardAccount identifies a credit card account (CCACCTFROM, CCACCTTO).
type CreditCardAccount struct {
	AccountID string
	Key       string
}

// InvestmentAccount identifies a brokerage account (INVACCTFROM).
type InvestmentAccount struct {
	BrokerID  string
	AccountID string
	Key       string
}

// ServiceStatus is the availability of a service on an account.
type ServiceStatus string

const (
	ServiceAvailable ServiceStatus = "AVAIL"
	ServicePending   ServiceStatus = "PEND"
	ServiceActive    ServiceStatus = "ACTIVE"
)

var ParseServiceStatus = oneOf(ServiceAvailable, ServicePending, ServiceActive)

// BankAccountInfo describes the services of a bank account.
type BankAccountInfo struct {
	Account             *BankAccount
	SupportsDownload    bool
	TransferSource      bool
	TransferDestination bool
	Status              ServiceStatus
}

// CreditCardAccountInfo describes the services of a credit card account.
type CreditCardAccountInfo struct {
	Account             *CreditCardAccount
	SupportsDownload    bool
	TransferSource      bool
	TransferDestination bool
	Status              ServiceStatus
}

// InvestmentAccountType is the ownership of a brokerage account.
type InvestmentAccountType string

const (
	Individual InvestmentAccountType = "INDIVIDUAL"
	Joint      InvestmentAccountType = "JOINT"
	Trust      InvestmentAccountType = "TRUST"
	Corporate  InvestmentAccountType = "CORPORATE"
)

var ParseInvestmentAccountType = oneOf(Individual, Joint, Trust, Corporate)

// InvestmentAccountInfo describes the services of a brokerage account.
type InvestmentAccountInfo struct {
	Account         *InvestmentAccount
	USProductType   string
	CheckingCapable bool
	Status          ServiceStatus
	Type            InvestmentAccountType
	OptionLevel     string
}

func registerAccounts(r *Registry) {
	Register[BankAccount](r, "BANKACCTFROM",
		Element("BANKID", 0, Text, func(a *BankAccount) *string { return &a.BankID }).Required(),
		Element("BRANCHID", 10, Text, func(a *BankAccount) *string { return &a.BranchID }),
		Element("ACCTID", 20, Text, func(a *BankAccount) *string { return &a.AccountID }).Required(),
		Element("ACCTTYPE", 30, Enum(ParseAccountType), func(a *BankAccount) *AccountType { return &a.Type }).Required(),
		Element("ACCTKEY", 40, Text, func(a *BankAccount) *string { return &a.Key }),
	)
	Register[CreditCardAccount](r, "CCACCTFROM",
		Element("ACCTID", 0, Text, func(a *CreditCardAccount) *string { return &a.AccountID }).Required(),
		Element("ACCTKEY", 10, Text, func(a *CreditCardAccount) *string { return &a.Key }),
	)
	Register[InvestmentAccount](r, "INVACCTFROM",
		Element("BROKERID", 0, Text, func(a *InvestmentAccount) *string { return &a.BrokerID }).Required(),
		Element("ACCTID", 10, Text, func(a *InvestmentAccount) *string { return &a.AccountID }).Required(),
		Element("ACCTKEY", 20, Text, func(a *InvestmentAccount) *string { return &a.Key }),
	)
	Register[BankAccountInfo](r, "BANKACCTINFO",
		Child("", 0, func(a *BankAccountInfo) **BankAccount { return &a.Account }).Required(),
		Element("SUPTXDL", 10, Flag, func(a *BankAccountInfo) *bool { return &a.SupportsDownload }).Required(),
		Element("XFERSRC", 20, Flag, func(a *BankAccountInfo) *bool { return &a.TransferSource }).Required(),
		Element("XFERDEST", 30, Flag, func(a *BankAccountInfo) *bool { return &a.TransferDestination }).Required(),
		Element("SVCSTATUS", 40, Enum(ParseServiceStatus), func(a *BankAccountInfo) *ServiceStatus { return &a.Status }).Required(),
	)
	Register[CreditCardAccountInfo](r, "CCACCTINFO",
		Child("", 0, func(a *CreditCardAccountInfo) **CreditCardAccount { return &a.Account }).Required(),
		Element("SUPTXDL", 10, Flag, func(a *CreditCardAccountInfo) *bool { return &a.SupportsDownload }).Required(),
		Element("XFERSRC", 20, Flag, func(a *CreditCardAccountInfo) *bool { return &a.TransferSource }).Required(),
		Element("XFERDEST", 30, Flag, func(a *CreditCardAccountInfo) *bool { return &a.TransferDestination }).Required(),
		Element("SVCSTATUS", 40, Enum(ParseServiceStatus), func(a *CreditCardAccountInfo) *ServiceStatus { return &a.Status }).Required(),
	)
	Register[InvestmentAccountInfo](r, "INVACCTINFO",
		Child("", 0, func(a *InvestmentAccountInfo) **InvestmentAccount { return &a.Account }).Required(),
		Element("USPRODUCTTYPE", 10, Text, func(a *InvestmentAccountInfo) *string { return &a.USProductType }),
		Element("CHECKING", 20, Flag, func(a *InvestmentAccountInfo) *bool { return &a.CheckingCapable }).Required(),
		Element("SVCSTATUS", 30, Enum(ParseServiceStatus), func(a *InvestmentAccountInfo) *ServiceStatus { return &a.Status }).Required(),
		Element("INVACCTTYPE", 40, Enum(ParseInvestmentAccountType), func(a *InvestmentAccountInfo) *InvestmentAccountType { return &a.Type }),
		Element("OPTIONLEVEL", 50, Text, func(a *InvestmentAccountInfo) *string { return &a.OptionLevel }),
	)
}
