// Package domain provides defenitions of all entities.
package domain

// Bar holds a single row of the bar table.
type Bar struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DeleteBarByIDParams is the input data to delete a bar by its id.
type DeleteBarByIDParams struct {
	ID int64 `db:"id" json:"id"`
}

// DeleteBarByIDAndNameParams is the input data to delete a bar matching both id and name.
type DeleteBarByIDAndNameParams struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
