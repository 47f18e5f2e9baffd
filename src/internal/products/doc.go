// Package products holds the catalogue domain: the Product record, the
// ordered Collection it lives in, and the rules for turning loosely typed
// request bodies into products.
//
// Input handling follows one of two modes. ModeLenient reproduces the
// behaviour existing clients rely on: prices are coerced the way
// JavaScript's parseFloat does (non-numeric input becomes NaN, stored as
// null), names of any JSON type are accepted, and an update body may carry
// a new id. ModeStrict validates bodies against an explicit schema and
// rejects anything that would store invalid data.
package products
