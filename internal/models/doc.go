// Package models defines the core domain models shared by the pricing
// calculator and the user registry.
//
// # Pricing
//
//   - Item: a priced item with its tax and total computed at construction
//   - Category: the closed set of item categories that select a tax formula
//
// # Registry
//
//   - User: a registered student record, identified by roll number
//
// # Design Principles
//
// 1. **Values, not objects**: models are plain structs built in one step by a
// factory; nothing is partially populated.
// 2. **No behaviour**: formulas live in calculator, validation in registry.
// 3. **Stable wire names**: JSON tags match the persisted users file.
package models
