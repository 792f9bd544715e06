// Package barbershop keeps the records of a small barbershop: the packages it
// sells, the stock it holds, its customers and the money it earns and spends.
//
// Everything lives in a single Ledger document made of six ordered collections:
//   - Packages: the service offerings, identified by their description.
//   - Inventory: stock components and their quantity, never negative.
//   - Customers: name, mobile and the number of visits, never negative.
//   - Earnings: an append-only log of sales, stamped when recorded.
//   - Monthly earnings: amounts per month, duplicates allowed.
//   - Expenses: money spent.
//
// A Ledger is loaded once with LoadLedger, changed through the managers of a
// Book, and written back wholesale with SaveLedger. Loading never fails on a
// missing or malformed file, it starts over with an empty ledger; saving
// always reports its failures.
//
// Text fields (description, component, name) act as keys but are not unique:
// removing by key removes every match.
//
// Checking out a package is the only operation touching two collections: it
// records an earning of the package price.
//
// This package is the foundation of the `barber` command-line tool.
package barbershop
