package auth

import (
	"context"
)

type contextKey string

var operatorClaimsKey contextKey = "operator_claims"

func SetOperatorClaims(ctx context.Context, claims OperatorClaims) context.Context {
	return context.WithValue(ctx, operatorClaimsKey, claims)
}

func GetOperatorClaims(ctx context.Context) OperatorClaims {
	val := ctx.Value(operatorClaimsKey)
	if claims, ok := val.(OperatorClaims); ok {
		return claims
	}
	return nil
}
