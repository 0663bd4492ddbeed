/*
Package splitter implements a deposit distributor.

A deposit of the native currency attached to a request is split into a
protocol fee and a forward amount. The forward amount is sent in equal parts
to a liquidity recipient and to a destruction address, while the sender is
credited with a fungible token transfer requested from the token contract.
The fee is kept by the module account.

Two pricing modes are supported. In the fixed mode the sender receives one
token unit for each forwarded unit of the native currency. In the oracle mode
the token amount is computed from the whole deposit, using a price that the
owner sets and that is kept in the database.

Both modes preserve the behaviour of the contracts they replace, including
the fact that they compute the token amount from a different base value.
All divisions round down and any remainder stays with the module account.
*/
package splitter
