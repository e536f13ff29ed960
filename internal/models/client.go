package models

import "encoding/json"

// Client is a shop customer. Only id and masini are interpreted; every other
// member (nume, telefon, email, ...) is kept exactly as it was sent so a write
// to one client never alters the others.
type Client struct {
	ID     string
	Masini []Vehicle
	Fields Members
}

// Vehicle is identified by its chassis serial, unique within one client. The
// descriptive members are open and kept verbatim.
type Vehicle struct {
	SerieSasiu string
	Fields     Members
}

// ======================================================
// CLIENT
// ======================================================

func (c Client) MarshalJSON() ([]byte, error) {
	var head, tail []member

	if c.ID != "" {
		id, err := json.Marshal(c.ID)
		if err != nil {
			return nil, err
		}
		head = append(head, member{"id", id})
	}

	if c.Masini != nil {
		masini, err := json.Marshal(c.Masini)
		if err != nil {
			return nil, err
		}
		tail = append(tail, member{"masini", masini})
	}

	return writeObject(head, c.Fields, tail)
}

// UnmarshalJSON accepts any JSON object. An id that is not a string or a
// masini that is not an array of vehicles stays in Fields untouched.
func (c *Client) UnmarshalJSON(data []byte) error {
	var m Members
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	*c = Client{}
	if m == nil {
		return nil
	}

	c.ID, _ = takeString(m, "id")

	if raw, ok := m["masini"]; ok {
		var masini []Vehicle
		if err := json.Unmarshal(raw, &masini); err == nil && masini != nil {
			c.Masini = masini
			delete(m, "masini")
		}
	}

	if len(m) > 0 {
		c.Fields = m
	}
	return nil
}

// Merge overlays patch onto c member by member. The id is never replaced.
func (c *Client) Merge(patch Members) {
	for k, v := range patch {
		if k == "id" {
			continue
		}

		v = append(json.RawMessage(nil), v...)

		if k == "masini" {
			var masini []Vehicle
			if err := json.Unmarshal(v, &masini); err == nil && masini != nil {
				c.Masini = masini
				delete(c.Fields, "masini")
				continue
			}
			c.Masini = nil
		}

		if c.Fields == nil {
			c.Fields = Members{}
		}
		c.Fields[k] = v
	}
}

// FindVehicle returns a deep copy of the vehicle with the given chassis serial.
func (c *Client) FindVehicle(serieSasiu string) (Vehicle, bool) {
	for _, m := range c.Masini {
		if m.SerieSasiu == serieSasiu {
			return m.Clone(), true
		}
	}
	return Vehicle{}, false
}

// ======================================================
// VEHICLE
// ======================================================

func (v Vehicle) MarshalJSON() ([]byte, error) {
	var head []member
	if v.SerieSasiu != "" {
		serial, err := json.Marshal(v.SerieSasiu)
		if err != nil {
			return nil, err
		}
		head = append(head, member{"serie_sasiu", serial})
	}
	return writeObject(head, v.Fields, nil)
}

func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var m Members
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	*v = Vehicle{}
	if m == nil {
		return nil
	}

	v.SerieSasiu, _ = takeString(m, "serie_sasiu")
	if len(m) > 0 {
		v.Fields = m
	}
	return nil
}

func (v Vehicle) Clone() Vehicle {
	return Vehicle{SerieSasiu: v.SerieSasiu, Fields: v.Fields.clone()}
}
