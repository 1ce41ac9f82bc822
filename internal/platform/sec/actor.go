// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Actor Identity

// Actor is the identity of the user behind a request: a stable id issued by
// the identity provider and the display name shown next to their content.
//
// Actors are read-only context. A nil *Actor means the request is anonymous.
type Actor struct {
	ID          string `json:"id"`
	DisplayName string `json:"nombre"`
}

// Actor rebuilds the request identity from verified token claims.
func (claims *AuthClaims) Actor() *Actor {
	if claims == nil || claims.UserID == "" {
		return nil
	}
	return &Actor{ID: claims.UserID, DisplayName: claims.DisplayName}
}
