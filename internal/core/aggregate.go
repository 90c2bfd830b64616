package core

// AggregateSpending reduces a transaction list to the absolute expense
// total per category. Only negative amounts count; everything else is
// skipped. Categories appear in the order they are first seen so the
// downstream recommendation and report output is stable.
func AggregateSpending(txs []Transaction) SpendByCategory {
	index := make(map[string]int, len(txs))
	var spend SpendByCategory
	for _, tx := range txs {
		if !tx.Amount.IsNegative() {
			continue
		}
		amount := tx.Amount.Abs()
		if i, ok := index[tx.Category]; ok {
			spend[i].Total = spend[i].Total.Add(amount)
			continue
		}
		index[tx.Category] = len(spend)
		spend = append(spend, CategorySpend{Category: tx.Category, Total: amount})
	}
	return spend
}
