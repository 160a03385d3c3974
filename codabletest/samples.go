package codabletest

// Sample documents shared by the package tests.
const (
	// UserProfile has a "First Last" name and an imageurl.
	UserProfile = `{
  "id": 1002889,
  "name": "Leanne Graham",
  "title": "qa",
  "email": "Sincere@april.biz",
  "phone": ["555-736-8031", "555-8933"],
  "imageurl": "https://example.com/profile.png"
}`

	// InterestedProfile nests sports and music under interests.
	InterestedProfile = `{
  "id": 1002889,
  "name": "Leanne Graham",
  "title": "qa",
  "email": "Sincere@april.biz",
  "phone": ["555-736-8031", "555-8933"],
  "imageurl": "http://hildegard.org",
  "interests": {
    "sports": ["football", "baseball"],
    "music": ["violin", "classical"]
  }
}`

	// URLImageProfile carries its image as a URL.
	URLImageProfile = `{
  "id": 1002889,
  "name": "Leanne Graham",
  "title": "qa",
  "email": "Sincere@april.biz",
  "phone": ["555-736-8031", "555-8933"],
  "image": "http://example.com/headshot.png"
}`

	// Base64ImageProfile carries its image as base64 data.
	Base64ImageProfile = `{
  "id": 1002889,
  "name": "Leanne Graham",
  "title": "qa",
  "email": "Sincere@april.biz",
  "phone": ["555-736-8031", "555-8933"],
  "image": "iVBORw0KGgoAAAANSUhEUgAAAEYAAABFCAYAAAD3upAqAAAABGdBTUEAALGPC/xhBQAAAVlpVFh0WE1M"
}`

	// StudentProfile is a profile plus university.
	StudentProfile = `{
  "id": 1002889,
  "name": "Leanne Graham",
  "title": "qa",
  "email": "Sincere@april.biz",
  "phone": ["555-736-8031", "555-8933"],
  "university": "RPI"
}`

	// EducatedProfile lists schools as single-member mappings.
	EducatedProfile = `{
  "id": 1002889,
  "name": "Leanne Graham",
  "title": "qa",
  "email": "Sincere@april.biz",
  "phone": ["555-736-8031", "555-8933"],
  "education": [
    {"RPI": "01/01/2000"},
    {"UMich": "09/01/1998"}
  ]
}`

	// Contacts is a top-level array.
	Contacts = `[
  {
    "id": 1002889,
    "name": "Leanne Graham",
    "email": "Sincere@april.biz",
    "phone": ["555-736-8031", "555-8933"]
  },
  {
    "id": 1009009,
    "name": "John Grisham",
    "email": "Sincere@example.biz",
    "phone": ["555-736-7892", "555-1900"]
  }
]`

	// BasicProfile has a {first, last} name mapping.
	BasicProfile = `{
  "id": 1002889,
  "name": {"first": "Leanne", "last": "Graham"},
  "title": "qa",
  "email": "Sincere@april.biz",
  "address": "101, Main street",
  "phone": ["555-736-8031", "555-8933"],
  "imageurl": "http://hildegard.org"
}`

	// DatedProfile has a date of birth.
	DatedProfile = `{
  "id": 1002889,
  "name": {"first": "Leanne", "last": "Graham"},
  "email": "Sincere@april.biz",
  "address": "101, Main street",
  "phone": ["555-736-8031", "555-8933"],
  "dob": "2017-11-12T20:06:28+00:00"
}`

	// Patient is a patient resource with members Patient does not hold.
	Patient = `{
  "active": true,
  "address": {
    "resourceType": "Address",
    "text": "25 Cliveden Pl, Belgravia, London SW1W 8HD, UK"
  },
  "birthDate": "1987-01-01",
  "e": "test3",
  "extension": {
    "Hello": "World!",
    "music": "Acid Jazz"
  },
  "gender": {
    "text": "Male"
  },
  "id": "0f62b5cb-3735-45f6-8ee9-deaeee7f308a",
  "name": [
    {
      "family": ["Krug"],
      "given": ["Perry"]
    }
  ],
  "resourceType": "Patient"
}`

	// EncodedPatient is Patient as written back out.
	EncodedPatient = `{
  "id": "0f62b5cb-3735-45f6-8ee9-deaeee7f308a",
  "birthDate": "1987-01-01",
  "name": [
    {
      "family": ["Krug"],
      "given": ["Perry"]
    }
  ],
  "gender": {
    "text": "Male"
  },
  "address": {
    "resourceType": "Address",
    "text": "25 Cliveden Pl, Belgravia, London SW1W 8HD, UK"
  },
  "extension": {
    "Hello": "World!",
    "music": "Acid Jazz"
  }
}`
)
