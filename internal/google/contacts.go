package google

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const personFields = "names,emailAddresses,phoneNumbers,organizations"

// Contact is a Google Contacts person reduced to the fields MAGSAV uses.
type Contact struct {
	ResourceName string   `json:"id,omitempty"`
	Nom          string   `json:"name"`
	Emails       []string `json:"emails,omitempty"`
	Telephones   []string `json:"phones,omitempty"`
	Entreprise   string   `json:"organization,omitempty"`
}

type valueField struct {
	Value string `json:"value"`
}

type nameField struct {
	DisplayName string `json:"displayName,omitempty"`
	GivenName   string `json:"givenName,omitempty"`
}

type organizationField struct {
	Name string `json:"name,omitempty"`
}

type person struct {
	ResourceName   string              `json:"resourceName,omitempty"`
	Names          []nameField         `json:"names,omitempty"`
	EmailAddresses []valueField        `json:"emailAddresses,omitempty"`
	PhoneNumbers   []valueField        `json:"phoneNumbers,omitempty"`
	Organizations  []organizationField `json:"organizations,omitempty"`
}

type ContactsClient struct {
	api     *apiClient
	baseURL string
}

func newContactsClient(api *apiClient, baseURL string) *ContactsClient {
	return &ContactsClient{
		api:     api,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *ContactsClient) Ping(ctx context.Context) error {
	return c.api.do(ctx, http.MethodGet, c.baseURL+"/people/me?personFields=names", nil, nil)
}

// CreateContact returns the resource name of the new person, e.g. people/c123.
func (c *ContactsClient) CreateContact(ctx context.Context, contact Contact) (string, error) {
	body := map[string]any{}
	if contact.Nom != "" {
		body["names"] = []map[string]string{{"givenName": contact.Nom}}
	}
	if len(contact.Emails) > 0 {
		body["emailAddresses"] = toValueFields(contact.Emails)
	}
	if len(contact.Telephones) > 0 {
		body["phoneNumbers"] = toValueFields(contact.Telephones)
	}
	if contact.Entreprise != "" {
		body["organizations"] = []map[string]string{{"name": contact.Entreprise}}
	}

	var created person
	if err := c.api.do(ctx, http.MethodPost, c.baseURL+"/people:createContact", body, &created); err != nil {
		return "", err
	}
	if created.ResourceName == "" {
		return "", fmt.Errorf("contacts returned no resource name")
	}

	return created.ResourceName, nil
}

func (c *ContactsClient) ListContacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact

	pageToken := ""
	for {
		q := url.Values{}
		q.Set("personFields", personFields)
		q.Set("pageSize", "1000")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var page struct {
			Connections   []person `json:"connections"`
			NextPageToken string   `json:"nextPageToken"`
		}
		if err := c.api.do(ctx, http.MethodGet, c.baseURL+"/people/me/connections?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}

		for _, p := range page.Connections {
			contacts = append(contacts, toContact(p))
		}

		if page.NextPageToken == "" {
			return contacts, nil
		}
		pageToken = page.NextPageToken
	}
}

func toValueFields(values []string) []valueField {
	fields := make([]valueField, 0, len(values))
	for _, v := range values {
		fields = append(fields, valueField{Value: v})
	}

	return fields
}

func toContact(p person) Contact {
	contact := Contact{ResourceName: p.ResourceName}
	if len(p.Names) > 0 {
		contact.Nom = p.Names[0].DisplayName
		if contact.Nom == "" {
			contact.Nom = p.Names[0].GivenName
		}
	}
	for _, e := range p.EmailAddresses {
		contact.Emails = append(contact.Emails, e.Value)
	}
	for _, t := range p.PhoneNumbers {
		contact.Telephones = append(contact.Telephones, t.Value)
	}
	if len(p.Organizations) > 0 {
		contact.Entreprise = p.Organizations[0].Name
	}

	return contact
}
