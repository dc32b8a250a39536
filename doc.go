// Package hunter provides a Go client for the Hunter API, the email
// discovery and verification service.
//
// Each method maps to one remote operation: searching the addresses behind a
// domain, finding and verifying a specific address, enriching people and
// companies, and managing leads and leads lists. Successful calls return the
// payload the service nests under the data field of its response envelope;
// the *Raw method variants skip the unwrapping and return the full response.
//
// Basic usage:
//
//	client, err := hunter.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.DomainSearch(ctx, &hunter.DomainSearchParams{
//	    Domain: "intercom.io",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	email, score, err := client.EmailFinder(ctx, &hunter.EmailFinderParams{
//	    Domain:   "asana.com",
//	    FullName: "Dustin Moskovitz",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(email, score)
package hunter
