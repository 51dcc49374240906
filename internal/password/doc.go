// Package password provides Argon2id hashing and verification of user
// credentials using the PHC string format.
//
// Hashing is memory- and CPU-heavy, so both Hash and Verify pass through a
// weighted semaphore sized to the number of schedulable CPUs. A burst of
// signups or logins queues on the semaphore instead of occupying every
// runtime thread and stalling unrelated requests.
package password
