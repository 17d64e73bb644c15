package main

import "database/sql"

func listingsForOwner(db *sql.DB, ownerID int) ([]Listing, error) {
	query := "SELECT id, title, description, client_id FROM listings WHERE client_id = ? ORDER BY id"
	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var listing Listing
		err := rows.Scan(&listing.ID, &listing.Title, &listing.Description, &listing.OwnerID)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}

func createListing(db *sql.DB, title, description string, ownerID int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO listings (title, description, client_id)
		VALUES (?, ?, ?)`, title, description, ownerID)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
