package models

// Category is a closed enumeration of ledger categories. Mandates are
// always expense-side; income categories exist only for ledger entries.
type Category string

const (
	CategorySalary      Category = "Salary"
	CategoryRefunds     Category = "Refunds"
	CategoryOtherIncome Category = "Other Income"

	CategoryHousing       Category = "Housing"
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryShopping      Category = "Shopping"
	CategoryGrocery       Category = "Grocery"
	CategoryUtilities     Category = "Utilities"
	CategoryLoan          Category = "Loan"
	CategoryPersonal      Category = "Personal"
	CategoryInvestment    Category = "Investment"
	CategoryInsurance     Category = "Insurance"
	CategoryBroadband     Category = "Broadband"
	CategoryCreditCard    Category = "Credit Card"
	CategoryOther         Category = "Other"
)

// IncomeCategories lists the categories valid for income entries.
var IncomeCategories = []Category{
	CategorySalary, CategoryRefunds, CategoryOtherIncome,
}

// ExpenseCategories lists the categories valid for expense entries and mandates.
var ExpenseCategories = []Category{
	CategoryHousing, CategoryFood, CategoryTransport, CategoryEntertainment,
	CategoryHealth, CategoryShopping, CategoryGrocery, CategoryUtilities,
	CategoryLoan, CategoryPersonal, CategoryInvestment, CategoryInsurance,
	CategoryBroadband, CategoryCreditCard, CategoryOther,
}

// IsExpense reports whether c is a valid expense category.
func (c Category) IsExpense() bool {
	for _, e := range ExpenseCategories {
		if c == e {
			return true
		}
	}
	return false
}

// IsIncome reports whether c is a valid income category.
func (c Category) IsIncome() bool {
	for _, i := range IncomeCategories {
		if c == i {
			return true
		}
	}
	return false
}

// IsValid reports whether c is any known category.
func (c Category) IsValid() bool {
	return c.IsExpense() || c.IsIncome()
}
