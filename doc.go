// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package ipbdd implements compact, immutable-by-sharing sets and maps of IPv4
and IPv6 addresses, built on top of a reduced, ordered binary decision
diagram (BDD) engine with structural sharing, memoized Boolean operators, and
a deterministic binary serialization format.

Basics

An Engine owns a hash-consed node store and a family of operator caches.
Nodes are immortal for the lifetime of the engine: there is no reference
counting and no garbage collection, unlike the BuDDy-style libraries this
package descends from. A NodeID is a tagged identifier: non-negative values
name terminals directly (their own value), negative values index into the
engine's nonterminal table. Two nodes compare equal, for any semantic
purpose, exactly when their identifiers are equal — this is the payoff of
hash-consing.

IP addresses are encoded as BDDs over a single, shared variable ordering.
Variable 0 discriminates the address family (true selects IPv4); variables
1..32 carry the bits of an IPv4 address, and variables 1..128 the bits of an
IPv6 address, both MSB-first. Set and Map build on this encoding; Set.Add
constructs a linear "chain" BDD for a CIDR prefix and ORs it into the
current root, Set.Contains evaluates the root against a bit oracle, and
Set.Iterate walks BDD paths to recover addresses or CIDR blocks.

Use of build tags

None. Earlier incarnations of this lineage offered a `buddy` build tag that
swapped in a BuDDy-style array-based kernel, and a `debug` tag that unlocked
cache statistics. This engine has a single, explicit Engine value with no
global state, so those tags no longer apply; statistics are always available
through Engine.Stats.

Concurrency

Engines are single-threaded and cooperative: no operation suspends, and
mutation (anything that can call nonterminal, directly or through And, Or or Ite)
is not safe to call concurrently with other operations on the same engine.
Read-only operations against a frozen engine — Contains, Equal, Empty,
Save, reachable-node counting — may run concurrently with each other.
*/
package ipbdd
