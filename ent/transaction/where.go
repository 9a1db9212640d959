// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/behavelab/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSessionID, v))
}

// ShortID applies equality check predicate on the "short_id" field. It's identical to ShortIDEQ.
func ShortID(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldShortID, v))
}

// Proposer applies equality check predicate on the "proposer" field. It's identical to ProposerEQ.
func Proposer(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldProposer, v))
}

// Recipient applies equality check predicate on the "recipient" field. It's identical to RecipientEQ.
func Recipient(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldRecipient, v))
}

// Seller applies equality check predicate on the "seller" field. It's identical to SellerEQ.
func Seller(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSeller, v))
}

// Buyer applies equality check predicate on the "buyer" field. It's identical to BuyerEQ.
func Buyer(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldBuyer, v))
}

// Shape applies equality check predicate on the "shape" field. It's identical to ShapeEQ.
func Shape(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldShape, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldQuantity, v))
}

// PricePerUnit applies equality check predicate on the "price_per_unit" field. It's identical to PricePerUnitEQ.
func PricePerUnit(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPricePerUnit, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldResolvedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldSessionID, v))
}

// ShortIDEQ applies the EQ predicate on the "short_id" field.
func ShortIDEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldShortID, v))
}

// ShortIDNEQ applies the NEQ predicate on the "short_id" field.
func ShortIDNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldShortID, v))
}

// ShortIDIn applies the In predicate on the "short_id" field.
func ShortIDIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldShortID, vs...))
}

// ShortIDNotIn applies the NotIn predicate on the "short_id" field.
func ShortIDNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldShortID, vs...))
}

// ShortIDGT applies the GT predicate on the "short_id" field.
func ShortIDGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldShortID, v))
}

// ShortIDGTE applies the GTE predicate on the "short_id" field.
func ShortIDGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldShortID, v))
}

// ShortIDLT applies the LT predicate on the "short_id" field.
func ShortIDLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldShortID, v))
}

// ShortIDLTE applies the LTE predicate on the "short_id" field.
func ShortIDLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldShortID, v))
}

// ShortIDContains applies the Contains predicate on the "short_id" field.
func ShortIDContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldShortID, v))
}

// ShortIDHasPrefix applies the HasPrefix predicate on the "short_id" field.
func ShortIDHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldShortID, v))
}

// ShortIDHasSuffix applies the HasSuffix predicate on the "short_id" field.
func ShortIDHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldShortID, v))
}

// ShortIDEqualFold applies the EqualFold predicate on the "short_id" field.
func ShortIDEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldShortID, v))
}

// ShortIDContainsFold applies the ContainsFold predicate on the "short_id" field.
func ShortIDContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldShortID, v))
}

// ProposerEQ applies the EQ predicate on the "proposer" field.
func ProposerEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldProposer, v))
}

// ProposerNEQ applies the NEQ predicate on the "proposer" field.
func ProposerNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldProposer, v))
}

// ProposerIn applies the In predicate on the "proposer" field.
func ProposerIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldProposer, vs...))
}

// ProposerNotIn applies the NotIn predicate on the "proposer" field.
func ProposerNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldProposer, vs...))
}

// ProposerGT applies the GT predicate on the "proposer" field.
func ProposerGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldProposer, v))
}

// ProposerGTE applies the GTE predicate on the "proposer" field.
func ProposerGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldProposer, v))
}

// ProposerLT applies the LT predicate on the "proposer" field.
func ProposerLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldProposer, v))
}

// ProposerLTE applies the LTE predicate on the "proposer" field.
func ProposerLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldProposer, v))
}

// ProposerContains applies the Contains predicate on the "proposer" field.
func ProposerContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldProposer, v))
}

// ProposerHasPrefix applies the HasPrefix predicate on the "proposer" field.
func ProposerHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldProposer, v))
}

// ProposerHasSuffix applies the HasSuffix predicate on the "proposer" field.
func ProposerHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldProposer, v))
}

// ProposerEqualFold applies the EqualFold predicate on the "proposer" field.
func ProposerEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldProposer, v))
}

// ProposerContainsFold applies the ContainsFold predicate on the "proposer" field.
func ProposerContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldProposer, v))
}

// RecipientEQ applies the EQ predicate on the "recipient" field.
func RecipientEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldRecipient, v))
}

// RecipientNEQ applies the NEQ predicate on the "recipient" field.
func RecipientNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldRecipient, v))
}

// RecipientIn applies the In predicate on the "recipient" field.
func RecipientIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldRecipient, vs...))
}

// RecipientNotIn applies the NotIn predicate on the "recipient" field.
func RecipientNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldRecipient, vs...))
}

// RecipientGT applies the GT predicate on the "recipient" field.
func RecipientGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldRecipient, v))
}

// RecipientGTE applies the GTE predicate on the "recipient" field.
func RecipientGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldRecipient, v))
}

// RecipientLT applies the LT predicate on the "recipient" field.
func RecipientLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldRecipient, v))
}

// RecipientLTE applies the LTE predicate on the "recipient" field.
func RecipientLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldRecipient, v))
}

// RecipientContains applies the Contains predicate on the "recipient" field.
func RecipientContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldRecipient, v))
}

// RecipientHasPrefix applies the HasPrefix predicate on the "recipient" field.
func RecipientHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldRecipient, v))
}

// RecipientHasSuffix applies the HasSuffix predicate on the "recipient" field.
func RecipientHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldRecipient, v))
}

// RecipientEqualFold applies the EqualFold predicate on the "recipient" field.
func RecipientEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldRecipient, v))
}

// RecipientContainsFold applies the ContainsFold predicate on the "recipient" field.
func RecipientContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldRecipient, v))
}

// SellerEQ applies the EQ predicate on the "seller" field.
func SellerEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSeller, v))
}

// SellerNEQ applies the NEQ predicate on the "seller" field.
func SellerNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldSeller, v))
}

// SellerIn applies the In predicate on the "seller" field.
func SellerIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldSeller, vs...))
}

// SellerNotIn applies the NotIn predicate on the "seller" field.
func SellerNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldSeller, vs...))
}

// SellerGT applies the GT predicate on the "seller" field.
func SellerGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldSeller, v))
}

// SellerGTE applies the GTE predicate on the "seller" field.
func SellerGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldSeller, v))
}

// SellerLT applies the LT predicate on the "seller" field.
func SellerLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldSeller, v))
}

// SellerLTE applies the LTE predicate on the "seller" field.
func SellerLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldSeller, v))
}

// SellerContains applies the Contains predicate on the "seller" field.
func SellerContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldSeller, v))
}

// SellerHasPrefix applies the HasPrefix predicate on the "seller" field.
func SellerHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldSeller, v))
}

// SellerHasSuffix applies the HasSuffix predicate on the "seller" field.
func SellerHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldSeller, v))
}

// SellerEqualFold applies the EqualFold predicate on the "seller" field.
func SellerEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldSeller, v))
}

// SellerContainsFold applies the ContainsFold predicate on the "seller" field.
func SellerContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldSeller, v))
}

// BuyerEQ applies the EQ predicate on the "buyer" field.
func BuyerEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldBuyer, v))
}

// BuyerNEQ applies the NEQ predicate on the "buyer" field.
func BuyerNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldBuyer, v))
}

// BuyerIn applies the In predicate on the "buyer" field.
func BuyerIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldBuyer, vs...))
}

// BuyerNotIn applies the NotIn predicate on the "buyer" field.
func BuyerNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldBuyer, vs...))
}

// BuyerGT applies the GT predicate on the "buyer" field.
func BuyerGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldBuyer, v))
}

// BuyerGTE applies the GTE predicate on the "buyer" field.
func BuyerGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldBuyer, v))
}

// BuyerLT applies the LT predicate on the "buyer" field.
func BuyerLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldBuyer, v))
}

// BuyerLTE applies the LTE predicate on the "buyer" field.
func BuyerLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldBuyer, v))
}

// BuyerContains applies the Contains predicate on the "buyer" field.
func BuyerContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldBuyer, v))
}

// BuyerHasPrefix applies the HasPrefix predicate on the "buyer" field.
func BuyerHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldBuyer, v))
}

// BuyerHasSuffix applies the HasSuffix predicate on the "buyer" field.
func BuyerHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldBuyer, v))
}

// BuyerEqualFold applies the EqualFold predicate on the "buyer" field.
func BuyerEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldBuyer, v))
}

// BuyerContainsFold applies the ContainsFold predicate on the "buyer" field.
func BuyerContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldBuyer, v))
}

// OfferTypeEQ applies the EQ predicate on the "offer_type" field.
func OfferTypeEQ(v OfferType) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldOfferType, v))
}

// OfferTypeNEQ applies the NEQ predicate on the "offer_type" field.
func OfferTypeNEQ(v OfferType) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldOfferType, v))
}

// OfferTypeIn applies the In predicate on the "offer_type" field.
func OfferTypeIn(vs ...OfferType) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldOfferType, vs...))
}

// OfferTypeNotIn applies the NotIn predicate on the "offer_type" field.
func OfferTypeNotIn(vs ...OfferType) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldOfferType, vs...))
}

// ShapeEQ applies the EQ predicate on the "shape" field.
func ShapeEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldShape, v))
}

// ShapeNEQ applies the NEQ predicate on the "shape" field.
func ShapeNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldShape, v))
}

// ShapeIn applies the In predicate on the "shape" field.
func ShapeIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldShape, vs...))
}

// ShapeNotIn applies the NotIn predicate on the "shape" field.
func ShapeNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldShape, vs...))
}

// ShapeGT applies the GT predicate on the "shape" field.
func ShapeGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldShape, v))
}

// ShapeGTE applies the GTE predicate on the "shape" field.
func ShapeGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldShape, v))
}

// ShapeLT applies the LT predicate on the "shape" field.
func ShapeLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldShape, v))
}

// ShapeLTE applies the LTE predicate on the "shape" field.
func ShapeLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldShape, v))
}

// ShapeContains applies the Contains predicate on the "shape" field.
func ShapeContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldShape, v))
}

// ShapeHasPrefix applies the HasPrefix predicate on the "shape" field.
func ShapeHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldShape, v))
}

// ShapeHasSuffix applies the HasSuffix predicate on the "shape" field.
func ShapeHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldShape, v))
}

// ShapeEqualFold applies the EqualFold predicate on the "shape" field.
func ShapeEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldShape, v))
}

// ShapeContainsFold applies the ContainsFold predicate on the "shape" field.
func ShapeContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldShape, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldQuantity, v))
}

// PricePerUnitEQ applies the EQ predicate on the "price_per_unit" field.
func PricePerUnitEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPricePerUnit, v))
}

// PricePerUnitNEQ applies the NEQ predicate on the "price_per_unit" field.
func PricePerUnitNEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldPricePerUnit, v))
}

// PricePerUnitIn applies the In predicate on the "price_per_unit" field.
func PricePerUnitIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldPricePerUnit, vs...))
}

// PricePerUnitNotIn applies the NotIn predicate on the "price_per_unit" field.
func PricePerUnitNotIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldPricePerUnit, vs...))
}

// PricePerUnitGT applies the GT predicate on the "price_per_unit" field.
func PricePerUnitGT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldPricePerUnit, v))
}

// PricePerUnitGTE applies the GTE predicate on the "price_per_unit" field.
func PricePerUnitGTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldPricePerUnit, v))
}

// PricePerUnitLT applies the LT predicate on the "price_per_unit" field.
func PricePerUnitLT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldPricePerUnit, v))
}

// PricePerUnitLTE applies the LTE predicate on the "price_per_unit" field.
func PricePerUnitLTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldPricePerUnit, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldResolvedAt))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.NotPredicates(p))
}
