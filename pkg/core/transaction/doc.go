/*
Package transaction implements the legacy message wire format: account
tables, message header, compiled instructions and the message itself.

A Message references accounts by their full keys, its Bytes method compiles
it into a CompiledMessage (where accounts are referenced by their indices
in the canonical account table) and serializes the result into the exact
byte sequence that is signed and sent to the network.
*/
package transaction
