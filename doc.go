/*

Package burnsplit defines interfaces used throughout the app, such as: storage, requests, handlers etc.
It also contains helpers to work with errors, context, addresses and abci results.
Look into this package to get an brief overview of design decisions made around interfaces and extension
building blocks.

Requests are processed one at a time by the host runtime. A handler never
moves value on its own: it returns a list of effects that the host executes
after the request was committed. Any error discards both the state changes
and the effects of the request.

*/
package burnsplit
