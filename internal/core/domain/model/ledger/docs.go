// Package ledger provides the append-only account ledger of the ordering system.
// Every balance movement leaves exactly one entry: a deposit credit or an
// order charge debit. Entries are immutable; corrections happen by writing
// new entries, never by editing or deleting old ones. Rejected orders move
// no money and therefore leave no entry.
package ledger
